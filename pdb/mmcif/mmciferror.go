// An error that saves the line number and the line we were trying to
// read. Call fill() on the scanner as soon as something goes wrong.
package mmcif

import (
	"strconv"
)

const maxMsgLen = 70

type readError struct {
	n      int    // line number
	inline string // The line that provoked the error
	desc   string // Description of error
}

// fill stores the problem for printing out when it is convenient. If
// there was already an error, we neglected it. Add it to the message.
func (m *cmmtScanner) fill(desc string, saveLine bool) {
	const multErrStr string = "\nNew error, but there was already an error from line "
	if !m.Ok {
		ln := strconv.Itoa(m.lErr.n)
		desc = m.lErr.desc + multErrStr + ln + ":\n" + desc + "\n"
	}
	m.Ok = false
	if saveLine {
		m.lErr.n = m.n
	}
	m.lErr.inline = string(m.cbytes())
	m.lErr.desc = desc
}

func firstPart(s string) string {
	l := len(s)
	if l > maxMsgLen {
		l = maxMsgLen
	}
	return s[:l]
}

// Error gives the number of the last line read, what went wrong and the
// start of the line.
func (e readError) Error() string {
	var errmsg string
	if e.n != 0 {
		errmsg = "Line: " + strconv.Itoa(e.n) + " "
	}
	errmsg += e.desc
	if e.n != 0 {
		errmsg += "\nLine starting with\n" + firstPart(e.inline)
	}
	return errmsg
}

// Line is the number of the line where the error was seen, or zero.
func (e readError) Line() int { return e.n }
