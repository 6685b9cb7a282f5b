package code

import (
	"math/rand"
	"strings"
	"time"
)

// Uppercase only so codes survive being read aloud; lookups normalize
// client input to uppercase. 0, O and I are left out.
var letters = strings.Split("123456789ABCDEFGHJKLMNPQRSTUVWXYZ", "")

const codeLength = 6

func GenerateRandom() string {
	code := ""
	s := rand.NewSource(time.Now().UnixNano())
	r := rand.New(s)
	for i := 0; i < codeLength; i++ {
		index := r.Intn(len(letters))
		code += letters[index]
	}
	return code
}
