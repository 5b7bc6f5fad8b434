package repository

import (
	"errors"
	"time"

	"github.com/user/filmbase/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create 创建用户，只保存密码哈希
func (r *UserRepository) Create(username, email, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:         username,
		Email:            email,
		PasswordHash:     string(hash),
		RegistrationDate: time.Now(),
	}

	if err := r.db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	return user, nil
}

// FindByEmail 根据邮箱查找用户，未找到返回 nil
func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID 根据 ID 查找用户，未找到返回 nil
func (r *UserRepository) FindByID(id int) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckPassword 验证密码
func (r *UserRepository) CheckPassword(user *model.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	return err == nil
}

// Update 只更新给定的字段，未找到返回 nil；密码由调用方先哈希
func (r *UserRepository) Update(id int, updates map[string]interface{}) (*model.User, error) {
	if len(updates) == 0 {
		return nil, errors.New("no user fields provided for update")
	}

	tx := r.db.Model(&model.User{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return nil, ErrDuplicate
		}
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}

	return r.FindByID(id)
}

// HashPassword 生成密码哈希
func (r *UserRepository) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Delete 删除用户，评论、片单等由数据库级联清理
func (r *UserRepository) Delete(id int) (bool, error) {
	tx := r.db.Delete(&model.User{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
