// Copyright 2025 Atlas Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"crypto/rand"
	"math/big"
	"strconv"
	"time"

	"github.com/go-atlas/atlas/internal/engine/consts"
	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/internal/engine/repo"
	"github.com/go-atlas/atlas/pkg/cache"
	httpx "github.com/go-atlas/atlas/pkg/http"
	"github.com/go-atlas/atlas/pkg/http/jwt"
	"github.com/go-atlas/atlas/pkg/id"
	"github.com/go-atlas/atlas/pkg/log"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const captchaTTL = 3 * time.Minute

var (
	ErrCaptchaIncorrect    = errors.New("captcha incorrect or expired")
	ErrCredentialsRequired = errors.New("username and password are required")
	ErrBadCredentials      = errors.New("incorrect username or password")
	ErrAccountDisabled     = errors.New("account disabled")
)

// LoginContext 登录请求的来源信息，由路由层提取
type LoginContext struct {
	Ip       string
	Location string
	Browser  string
	Os       string
}

type UserService struct {
	userRepo     repo.IUserRepository
	loginLogRepo repo.ILoginLogRepository
	cache        cache.ICache
	authSvc      *AuthService
}

func NewUserService(userRepo repo.IUserRepository, loginLogRepo repo.ILoginLogRepository, cache cache.ICache, authSvc *AuthService) *UserService {
	return &UserService{
		userRepo:     userRepo,
		loginLogRepo: loginLogRepo,
		cache:        cache,
		authSvc:      authSvc,
	}
}

// GenerateCaptcha 生成四位数字验证码，写入 redis 三分钟有效
func (us *UserService) GenerateCaptcha(ctx context.Context) (uuid, code string, err error) {
	uuid = id.GetUUID()
	code, err = randomDigits(4)
	if err != nil {
		return "", "", err
	}
	if err = us.cache.Set(ctx, consts.CaptchaKey+uuid, code, captchaTTL).Err(); err != nil {
		return "", "", errors.Wrap(err, "store captcha")
	}
	return uuid, code, nil
}

// Login 校验验证码与凭证，签发令牌并写会话。
// 无论成败都会异步记一条登录日志。
func (us *UserService) Login(ctx context.Context, login *model.Login, auth *httpx.Auth, lc LoginContext) (string, error) {
	if login.Username == "" || login.Password == "" {
		us.recordLoginLog(login.Username, lc, model.LoginStatusFailure, "user or password is empty")
		return "", ErrCredentialsRequired
	}

	if !us.verifyCaptcha(ctx, login.Uuid, login.Code) {
		us.recordLoginLog(login.Username, lc, model.LoginStatusFailure, "captcha incorrect")
		return "", ErrCaptchaIncorrect
	}

	user, err := us.userRepo.GetUserByUsername(login.Username)
	if err != nil {
		us.recordLoginLog(login.Username, lc, model.LoginStatusFailure, "user does not exist")
		return "", ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(login.Password)) != nil {
		us.recordLoginLog(login.Username, lc, model.LoginStatusFailure, "password incorrect")
		return "", ErrBadCredentials
	}
	if user.Status != model.StatusNormal {
		us.recordLoginLog(login.Username, lc, model.LoginStatusFailure, "account disabled")
		return "", ErrAccountDisabled
	}

	aToken, _, err := jwt.GenToken(user.UserId, user.Username, []byte(auth.SecretKey), auth.AccessExpire, auth.RefreshExpire)
	if err != nil {
		log.Errorw("failed to generate token", "userId", user.UserId, "error", err)
		return "", err
	}

	sessionKey := consts.UserTokenKey + strconv.FormatInt(user.UserId, 10)
	if err = us.cache.Set(ctx, sessionKey, aToken, auth.AccessExpire).Err(); err != nil {
		log.Errorw("failed to store session", "userId", user.UserId, "error", err)
		return "", err
	}

	us.recordLoginLog(login.Username, lc, model.LoginStatusSuccess, "login success")
	go func() {
		if err := us.userRepo.RecordLogin(user.UserId, lc.Ip, time.Now()); err != nil {
			log.Warnw("failed to record last login", "userId", user.UserId, "error", err)
		}
	}()
	return aToken, nil
}

// Logout 删除会话，令牌随之失效
func (us *UserService) Logout(ctx context.Context, userId int64) error {
	return us.cache.Del(ctx, consts.UserTokenKey+strconv.FormatInt(userId, 10)).Err()
}

// GetInfo 当前用户档案、角色标识与权限标识
func (us *UserService) GetInfo(userId int64) (*model.User, []string, []string, error) {
	user, err := us.userRepo.GetUserById(userId)
	if err != nil {
		return nil, nil, nil, err
	}
	roleKeys, err := us.authSvc.RoleKeysForUser(userId)
	if err != nil {
		return nil, nil, nil, err
	}
	perms, err := us.authSvc.PermsForUser(userId)
	if err != nil {
		return nil, nil, nil, err
	}
	return user, roleKeys, perms, nil
}

// CreateUser 创建用户，密码入库前做散列
func (us *UserService) CreateUser(req *model.CreateUserReq) error {
	unique, err := us.userRepo.CheckUsernameUnique(req.Username, 0)
	if err != nil {
		return err
	}
	if !unique {
		return errors.Errorf("username %s already exists", req.Username)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}

	user := &model.User{
		DeptId:      req.DeptId,
		Username:    req.Username,
		Nickname:    req.Nickname,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Sex:         req.Sex,
		Password:    string(hashed),
		Status:      req.Status,
	}
	user.Remark = req.Remark
	return us.userRepo.CreateUser(user, req.RoleIds, req.PostIds)
}

// UpdateUser 更新用户基本信息与角色、岗位绑定
func (us *UserService) UpdateUser(req *model.UpdateUserReq) error {
	updates := map[string]any{
		"dept_id":      req.DeptId,
		"nickname":     req.Nickname,
		"email":        req.Email,
		"phone_number": req.PhoneNumber,
		"sex":          req.Sex,
		"status":       req.Status,
		"remark":       req.Remark,
	}
	return us.userRepo.UpdateUser(req.UserId, updates, req.RoleIds, req.PostIds)
}

// DeleteUsers 批量删除用户，拒绝删除当前登录用户
func (us *UserService) DeleteUsers(operatorId int64, userIds []int64) error {
	for _, userId := range userIds {
		if userId == operatorId {
			return errors.New("cannot delete current user")
		}
	}
	return us.userRepo.DeleteUsers(userIds)
}

// ChangeStatus 启停用户
func (us *UserService) ChangeStatus(userId int64, status string) error {
	return us.userRepo.UpdateUserColumns(userId, map[string]any{"status": status})
}

// ResetPwd 管理员重置密码
func (us *UserService) ResetPwd(userId int64, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}
	return us.userRepo.UpdateUserColumns(userId, map[string]any{"password": string(hashed)})
}

// UpdateProfile 个人资料维护
func (us *UserService) UpdateProfile(userId int64, req *model.UpdateProfileReq) error {
	return us.userRepo.UpdateUserColumns(userId, map[string]any{
		"nickname":     req.Nickname,
		"email":        req.Email,
		"phone_number": req.PhoneNumber,
		"sex":          req.Sex,
	})
}

// UpdatePwd 修改密码，先校验旧密码
func (us *UserService) UpdatePwd(userId int64, req *model.UpdatePwdReq) error {
	user, err := us.userRepo.GetUserById(userId)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)) != nil {
		return errors.New("old password incorrect")
	}
	return us.ResetPwd(userId, req.NewPassword)
}

// AllocateRoles 重建用户的角色绑定
func (us *UserService) AllocateRoles(userId int64, roleIds []int64) error {
	return us.userRepo.ReplaceUserRoles(userId, roleIds)
}

func (us *UserService) verifyCaptcha(ctx context.Context, uuid, code string) bool {
	if uuid == "" || code == "" {
		return false
	}
	key := consts.CaptchaKey + uuid
	stored, err := us.cache.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	// 一次性使用
	us.cache.Del(ctx, key)
	return stored == code
}

func (us *UserService) recordLoginLog(username string, lc LoginContext, status, msg string) {
	now := time.Now()
	entry := &model.LoginLog{
		Username:      username,
		IpAddr:        lc.Ip,
		LoginLocation: lc.Location,
		Browser:       lc.Browser,
		Os:            lc.Os,
		Status:        status,
		Msg:           msg,
		LoginTime:     &now,
	}
	go func() {
		if err := us.loginLogRepo.CreateLoginLog(entry); err != nil {
			log.Errorw("failed to persist login log", "username", username, "error", err)
		}
	}()
}

func randomDigits(n int) (string, error) {
	buf := make([]byte, n)
	for i := range buf {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", errors.Wrap(err, "generate captcha")
		}
		buf[i] = byte('0' + d.Int64())
	}
	return string(buf), nil
}
