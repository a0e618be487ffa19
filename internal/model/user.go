package model

// User 用户模型，密码只保存哈希且不输出到 JSON
type User struct {
	Id            int64   `json:"id" gorm:"primaryKey"`
	Username      string  `json:"username" gorm:"not null;uniqueIndex"`
	Password      string  `json:"-" gorm:"not null"`
	WalletAddress *string `json:"walletAddress" gorm:"uniqueIndex"`
}

// TableName 自定义表名
func (User) TableName() string {
	return "users"
}

// UserInput 注册请求体
type UserInput struct {
	Username      string  `json:"username" binding:"required,min=3,max=64"`
	Password      string  `json:"password" binding:"required,min=8"`
	WalletAddress *string `json:"walletAddress"`
}
