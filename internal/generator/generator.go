package generator

import (
	"math/rand"

	"dtr/internal/domain"
)

// Alphabet for generated arguments. Arguments travel through the shell
// unescaped, so only characters that survive word splitting are used.
const argAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Alphabet for generated stdin text.
const stdinAlphabet = argAlphabet + " \n\t.,:;-_"

// Empty returns the trivial generator: empty stdin, no arguments.
func Empty() domain.Generator {
	return domain.GenEmpty
}

// Random returns a seeded generator producing printable stdin text up
// to maxStdinLen bytes and up to maxArgs short alphanumeric arguments.
// The same seed always produces the same sequence of invocations.
func Random(seed int64, maxStdinLen, maxArgs int) domain.Generator {
	if maxStdinLen < 0 {
		maxStdinLen = 0
	}
	if maxArgs < 0 {
		maxArgs = 0
	}
	rng := rand.New(rand.NewSource(seed))

	return func() domain.Invocation {
		stdin := make([]byte, rng.Intn(maxStdinLen+1))
		for i := range stdin {
			stdin[i] = stdinAlphabet[rng.Intn(len(stdinAlphabet))]
		}

		var args []string
		for i, n := 0, rng.Intn(maxArgs+1); i < n; i++ {
			word := make([]byte, 1+rng.Intn(8))
			for j := range word {
				word[j] = argAlphabet[rng.Intn(len(argAlphabet))]
			}
			args = append(args, string(word))
		}

		return domain.Invocation{Stdin: string(stdin), Args: args}
	}
}
