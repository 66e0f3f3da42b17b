package model

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
)

// Valid class levels for students.
var ClassLevels = []int{8, 9, 10}

func IsValidClassLevel(class int) bool {
	for _, c := range ClassLevels {
		if c == class {
			return true
		}
	}
	return false
}

// swagger:model User
type User struct {
	BaseModel
	Email    string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	FullName string   `gorm:"size:100;not null" json:"fullName"`
	Class    *int     `json:"class,omitempty"`
	Role     UserRole `gorm:"size:20;default:'student';index" json:"role"`
	Password string   `gorm:"size:100;not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}
