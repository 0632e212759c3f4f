package rollhash

// ntHash base seeds (Mohamadi et al., 2016).
const (
	seedA uint64 = 0x3c8bfbb395c60474
	seedC uint64 = 0x3193c18562a02b4c
	seedG uint64 = 0x20323ed082572324
	seedT uint64 = 0x295549f54be24456
)

// Multi-hash extension constants from the ntHash NTM scheme.
const (
	multiSeed  uint64 = 0x90b45d39fb6da1fa
	multiShift        = 27
)

// seedTab maps a base to its seed; zero for symbols outside the alphabet.
var seedTab = [256]uint64{
	'A': seedA,
	'C': seedC,
	'G': seedG,
	'T': seedT,
}
