package log

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// L 全局 logger，Setup 之前按 info 级别输出
var L = newLogger(os.Stdout, zapcore.InfoLevel)

// 仓库根目录，caller 只保留根目录之后的部分
var root = func() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	// file = <root>/pkg/log/logger.go
	return filepath.ToSlash(filepath.Dir(filepath.Dir(filepath.Dir(file)))) + "/"
}()

// Setup 按配置重建全局 logger，debug 模式输出 debug 级别
func Setup(debug bool) {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	L = newLogger(os.Stdout, level)
}

// Named 子模块 logger，如 gorm、http
func Named(name string) *zap.Logger {
	return L.Named(name)
}

func newLogger(w io.Writer, level zapcore.LevelEnabler) *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeDuration = zapcore.MillisDurationEncoder
	cfg.EncodeCaller = encodeCaller

	core := zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.AddSync(w), level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).
		With(zap.String("service", "agora"))
}

// encodeCaller 输出 service/topic.go:80 这种仓库内相对路径
func encodeCaller(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
	if root != "/" && strings.HasPrefix(caller.File, root) {
		enc.AppendString(strings.TrimPrefix(caller.File, root) + ":" + strconv.Itoa(caller.Line))
		return
	}
	enc.AppendString(caller.TrimmedPath())
}
