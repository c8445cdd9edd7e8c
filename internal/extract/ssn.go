package extract

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// ErrMalformedSSN is returned when an SSN value has fewer than three hyphen-separated groups
var ErrMalformedSSN = errors.New("malformed ssn")

const (
	ssnMinGroups  = 3
	ssnLastDigits = 1000
	ssnLastSpan   = 9000 // draws cover 1000-9999
)

// SSNRewriter replaces the last group of an SSN with fresh random digits
type SSNRewriter struct {
	rng *rand.Rand
}

// NewSSNRewriter creates a rewriter. A nil rng uses a generator seeded from
// process entropy; randomness here is cosmetic and not security sensitive.
func NewSSNRewriter(rng *rand.Rand) *SSNRewriter {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &SSNRewriter{rng: rng}
}

// Rewrite returns group0-group1-NNNN, where NNNN is a new 4-digit draw that
// never equals the original last group. Groups past the third are discarded.
func (s *SSNRewriter) Rewrite(value string) (string, error) {
	groups := strings.Split(value, "-")
	if len(groups) < ssnMinGroups {
		// The value itself stays out of the error message.
		return "", fmt.Errorf("%w: got %d hyphen-separated groups, want at least %d",
			ErrMalformedSSN, len(groups), ssnMinGroups)
	}

	return groups[0] + "-" + groups[1] + "-" + s.lastDigits(groups[2]), nil
}

// lastDigits draws until the result differs from previous
func (s *SSNRewriter) lastDigits(previous string) string {
	for {
		digits := strconv.Itoa(ssnLastDigits + s.rng.IntN(ssnLastSpan))
		if digits != previous {
			return digits
		}
	}
}
