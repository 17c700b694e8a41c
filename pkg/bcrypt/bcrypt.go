package bcrypt

import "golang.org/x/crypto/bcrypt"

type IBcrypt interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashPassword string, password string) error
}

type bcryptService struct {
	cost int
}

func New() IBcrypt {
	return NewWithCost(bcrypt.DefaultCost)
}

// NewWithCost falls back to the default cost when the requested cost is
// outside the library's supported range.
func NewWithCost(cost int) IBcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptService{cost: cost}
}

func (b *bcryptService) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

func (b *bcryptService) ComparePassword(hashPassword string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashPassword), []byte(password))
}
