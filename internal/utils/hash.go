package utils

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

var (
	burnOnce sync.Once
	burnHash []byte
)

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcryptCost)
	return string(b), err
}

func CheckPassword(hashed, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}

// BurnPasswordCheck costs one bcrypt comparison at bcryptCost and always
// fails. Login runs it for unknown emails so both rejection paths take
// the same time.
func BurnPasswordCheck(pw string) bool {
	burnOnce.Do(func() {
		burnHash, _ = bcrypt.GenerateFromPassword([]byte("unused"), bcryptCost)
	})
	_ = bcrypt.CompareHashAndPassword(burnHash, []byte(pw))
	return false
}
