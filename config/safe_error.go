package config

// SafeErrorMessage 生产环境（release 模式）返回 fallback，避免向客户端暴露内部错误
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
