package pdb

// Export some internal functions for testing

var OldOrMmcif = oldOrMmcif
var LookInFile = lookInFile
var ReadStream = readStream

const (
	OldFmt   = oldFmt
	MmcifFmt = mmcifFmt
	UnkFmt   = unkFmt
)
