package model

type User struct {
	UserID         uint    `gorm:"primaryKey" json:"user_id"`
	UserName       string  `gorm:"not null;type:varchar(50)" json:"user_name"`
	UserEmail      string  `gorm:"unique;not null;type:varchar(100)" json:"user_email"`
	HashedPassword string  `gorm:"not null;type:varchar(100)" json:"-"`
	UserAddress    string  `gorm:"type:varchar(255)" json:"user_address"`
	Orders         []Order `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	BaseModel
}
