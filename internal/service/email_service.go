package service

import (
	"Lee_Blog/internal/pkg"
	"Lee_Blog/internal/repository/redis"
)

type EmailService struct {
	mailer *pkg.Mailer
	rds    *redis.EmailRepository
}

func NewEmailService(cfg pkg.SMTPConfig) *EmailService {
	return &EmailService{mailer: pkg.NewMailer(cfg), rds: &redis.EmailRepository{}}
}

var codeSubjects = map[string]string{
	"register": "注册验证",
	"reset":    "重置密码",
}

// SendCode 发送验证码。先写 pending 键，邮件真正发出后再转 confirmed，
// 发信失败时清掉 pending，保证没发出去的码不可用。
func (s *EmailService) SendCode(scope, email string) error {
	code, err := pkg.NumericCode(6)
	if err != nil {
		return err
	}

	if err = s.rds.SetCodePending(scope, email, code); err != nil {
		return err
	}

	if err = s.mailer.SendCodeMail(email, codeSubjects[scope], code, redis.DefaultEmailCodeTTL); err != nil {
		_ = s.rds.DeleteCodePending(scope, email)
		return err
	}

	if err = s.rds.MarkCodeConfirmed(scope, email); err != nil {
		_ = s.rds.DeleteCodePending(scope, email)
		return err
	}

	return nil
}

// VerifyCode 校验验证码并一次性删除
func (s *EmailService) VerifyCode(scope, email, code string) (bool, error) {
	val, err := s.rds.GetCode(scope, email)
	if err != nil {
		// 不存在或已过期
		return false, err
	}
	if val != code {
		return false, nil
	}
	if err = s.rds.DeleteCode(scope, email); err != nil {
		return false, err
	}
	return true, nil
}
