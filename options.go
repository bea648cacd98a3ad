package spindle

import "log/slog"

type Option func(*compilerConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *compilerConfig) {
		cfg.logger = logger
	}
}

func WithRecordObserver(hook RecordHook) Option {
	return func(cfg *compilerConfig) {
		cfg.onRecord = append(cfg.onRecord, hook)
	}
}

func WithInstallObserver(hook InstallHook) Option {
	return func(cfg *compilerConfig) {
		cfg.onInstall = append(cfg.onInstall, hook)
	}
}

func WithRecoverObserver(hook RecoverHook) Option {
	return func(cfg *compilerConfig) {
		cfg.onRecover = append(cfg.onRecover, hook)
	}
}
