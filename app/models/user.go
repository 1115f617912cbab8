package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	TierFree         = "free"
	TierBasic        = "basic"
	TierProfessional = "professional"
	TierEnterprise   = "enterprise"
)

type User struct {
	ID                 string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Username           string     `gorm:"uniqueIndex;type:varchar(150)" json:"username" validate:"required,min=3,max=150"`
	Email              string     `gorm:"uniqueIndex;type:varchar(200)" json:"email" validate:"required,email,min=5,max=200"`
	Password           string     `gorm:"type:text" json:"-" validate:"required,min=6"`
	FirstName          string     `gorm:"type:varchar(100)" json:"firstName,omitempty"`
	LastName           string     `gorm:"type:varchar(100)" json:"lastName,omitempty"`
	SubscriptionTier   string     `gorm:"type:varchar(50);default:'free'" json:"subscriptionTier" validate:"oneof=free basic professional enterprise"`
	SubscriptionExpiry *time.Time `gorm:"type:timestamp;default:null" json:"subscriptionExpiry"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	LastLogin          *time.Time `gorm:"type:timestamp;default:null" json:"lastLogin"`
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// CreateUser builds a validated user with a hashed password and the free
// tier. Persisting it is the repository's job.
func CreateUser(username, email, password, firstName, lastName string) (*User, error) {
	pw, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Username:         username,
		Email:            email,
		Password:         pw,
		FirstName:        firstName,
		LastName:         lastName,
		SubscriptionTier: TierFree,
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	return u, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// CheckPassword verifies if the provided password matches the user's stored password
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.Password)
}

// HasActiveSubscription reports whether the user holds a paid tier that
// has not expired yet.
func (u *User) HasActiveSubscription() bool {
	if u.SubscriptionTier == TierFree || u.SubscriptionTier == "" {
		return false
	}
	return u.SubscriptionExpiry != nil && u.SubscriptionExpiry.After(time.Now())
}
