package domain

import "time"

// CREATE TABLE public.users (
//     id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     full_name  TEXT,
//     email      TEXT UNIQUE,
//     password   TEXT,
//     role       TEXT,
//     store_name TEXT,
//     created_at TIMESTAMPTZ DEFAULT NOW()
// );

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName  string    `gorm:"column:full_name;type:text" json:"full_name"`
	Email     string    `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password;type:text" json:"-"`
	Role      string    `gorm:"column:role;type:text" json:"role"`
	StoreName string    `gorm:"column:store_name;type:text" json:"store_name,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
