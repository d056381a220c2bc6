package service

import (
	"errors"
	"fmt"
	"html"

	"moneyflow/config"

	"gopkg.in/gomail.v2"
)

// ErrEmailDisabled 邮件服务未启用
var ErrEmailDisabled = errors.New("邮件服务未启用，请配置 MONEYFLOW_EMAIL_ENABLED=true")

// EmailService 邮件服务
type EmailService struct {
	cfg     *config.EmailConfig
	baseURL string
}

// NewEmailService 创建邮件服务，baseURL 用于邮件中的登录链接
func NewEmailService(cfg *config.EmailConfig, baseURL string) *EmailService {
	return &EmailService{cfg: cfg, baseURL: baseURL}
}

// Enabled 是否启用发信
func (s *EmailService) Enabled() bool {
	return s.cfg != nil && s.cfg.Enabled
}

// SendWelcomeEmail 发送注册欢迎邮件
func (s *EmailService) SendWelcomeEmail(toEmail, name string) error {
	if !s.Enabled() {
		return ErrEmailDisabled
	}
	return s.sendEmail(toEmail, "【Moneyflow】欢迎使用", s.generateWelcomeEmailBody(name))
}

// generateWelcomeEmailBody 生成欢迎邮件内容
func (s *EmailService) generateWelcomeEmailBody(name string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: 'Microsoft YaHei', Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; }
        .header { background: linear-gradient(135deg, #667eea, #764ba2); color: white; padding: 30px; text-align: center; }
        .content { padding: 40px 30px; color: #333; line-height: 1.8; }
        .btn { display: inline-block; background: #667eea; color: white !important; text-decoration: none; padding: 14px 40px; border-radius: 8px; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h1>Moneyflow</h1></div>
        <div class="content">
            <p><strong>%s</strong>，欢迎加入！</p>
            <p>我们已经为您创建了常用的收入和支出类别。添加一个账户，就可以开始记账了。</p>
            <p style="text-align: center;"><a href="%s" class="btn">开始使用</a></p>
        </div>
        <div class="footer"><p>此邮件由系统自动发送，请勿回复</p></div>
    </div>
</body>
</html>
`, html.EscapeString(name), html.EscapeString(s.baseURL))
}

// SendTestEmail 发送测试邮件
func (s *EmailService) SendTestEmail(toEmail string) error {
	if !s.Enabled() {
		return ErrEmailDisabled
	}
	body := `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>邮件配置成功</h2>
    <p>如果您收到这封邮件，说明邮件服务配置正确。</p>
</body>
</html>
`
	return s.sendEmail(toEmail, "【Moneyflow】邮件配置测试", body)
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}
