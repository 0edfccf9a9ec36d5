package cli

import "dtr/internal/config"

// Flags holds command-line flags
type Flags struct {
	Count          int
	TimeoutMS      int
	Seed           int64
	MaxStdinLen    int
	MaxArgs        int
	CompareStatus  bool
	CompareStdout  bool
	CompareStderr  bool
	Silent         bool
	SuppressErrors bool
	Verbose        bool
	NoColor        bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Count:          f.Count,
		TimeoutMS:      f.TimeoutMS,
		Seed:           f.Seed,
		MaxStdinLen:    f.MaxStdinLen,
		MaxArgs:        f.MaxArgs,
		CompareStatus:  f.CompareStatus,
		CompareStdout:  f.CompareStdout,
		CompareStderr:  f.CompareStderr,
		Silent:         f.Silent,
		SuppressErrors: f.SuppressErrors,
		Verbose:        f.Verbose,
		NoColor:        f.NoColor,
	}
}
