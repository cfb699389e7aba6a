package consts

// redis key 前缀
const (
	UserTokenKey = "atlas:login:token:"
	CaptchaKey   = "atlas:captcha:"
	ConfigKey    = "atlas:config:"
)

// CLAIMS 认证中间件写入的用户凭证
const CLAIMS = "claims"
