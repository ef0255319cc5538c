package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Log доступен сразу, до Init, чтобы пакеты и тесты не зависели от порядка запуска.
var Log = logrus.New()

// Init инициализирует структурированный логгер.
func Init(level string) {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	// Используем JSON формат для production, text для development
	Log.SetFormatter(&logrus.JSONFormatter{})
}

// SetTextFormatter устанавливает текстовый формат логов (для development).
func SetTextFormatter() {
	if Log != nil {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}

// SetOutput перенаправляет вывод логов (используется в тестах).
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}

// ErrorfLogger направляет ошибки фоновых горутин в глобальный логгер.
type ErrorfLogger struct{}

func (ErrorfLogger) Errorf(format string, args ...interface{}) {
	Log.Errorf(format, args...)
}
