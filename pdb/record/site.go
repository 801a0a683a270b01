package record

import (
	"fmt"

	"github.com/andrew-torda/pdbcodec/pdb/cmmn"
)

// Residues on one SITE line
const sitePerLine = 4

// Site is all the lines of one SITE, keyed by site name.
// NumRes is what the file says and is written back unchanged. It
// should be len(Residues).
type Site struct {
	raw
	SiteID   string
	NumRes   int
	Residues []ResID
}

func (*Site) Tag() string { return "SITE" }

// Key is the site name.
func (s *Site) Key() string { return s.SiteID }

func (s *Site) Parse(line string) error {
	c := cmmn.NewCols("SITE", line)
	c.Int(8, 10) // sequence number, derived on output
	if len(s.lines) == 0 {
		s.SiteID = c.Str(12, 14)
		s.NumRes = c.Int(16, 17)
	}
	for k := 0; k < sitePerLine; k++ {
		b := 19 + 11*k
		if c.Str(b, b+9) == "" {
			continue
		}
		s.Residues = append(s.Residues,
			ResID{c.Str(b, b+2), c.Str(b+4, b+4), c.Int(b+5, b+8), c.Str(b+9, b+9)})
	}
	s.keep(line)
	return c.Err()
}

// absentRes pads the last group of residues. A real residue always
// has a name.
var absentRes = ResID{}

func (s *Site) Format() ([]string, error) {
	groups := cmmn.Chunk(s.Residues, sitePerLine, absentRes)
	if len(groups) == 0 {
		groups = [][]ResID{nil}
	}
	out := make([]string, len(groups))
	for i, g := range groups {
		line := fmt.Sprintf("SITE   %3d %3s %2d", i+1, s.SiteID, s.NumRes)
		for _, r := range g {
			if r == absentRes {
				break
			}
			line += fmt.Sprintf(" %3s %1s%4d%1s", r.ResName, r.ChainID, r.SeqNum, r.ICode)
		}
		out[i] = cmmn.TrimRight(line)
	}
	return out, nil
}
