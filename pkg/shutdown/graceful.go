// Package shutdown ожидает сигнал завершения и выполняет хуки остановки.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gosignup/pkg/logger"
)

const (
	msgShutdownStarted  = "shutdown started"
	msgShutdownFinished = "shutdown finished"
	msgShutdownTimeout  = "shutdown timed out"
	msgHookFailed       = "shutdown hook failed"
)

// Hook освобождает ресурс в пределах переданного контекста.
type Hook func(context.Context) error

// Wait блокируется до SIGINT или SIGTERM, затем выполняет хуки в пределах timeout.
func Wait(timeout time.Duration, hooks ...Hook) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	WaitContext(ctx, timeout, hooks...)
}

// WaitContext блокируется до отмены ctx, затем параллельно выполняет хуки.
// Возвращается, когда все хуки завершились или истек timeout.
func WaitContext(ctx context.Context, timeout time.Duration, hooks ...Hook) {
	<-ctx.Done()

	hookCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	log := logger.Log(hookCtx).With(zap.Int("hooks", len(hooks)), zap.Duration("timeout", timeout))
	log.Info(hookCtx, msgShutdownStarted)

	var wg sync.WaitGroup
	for i, hook := range hooks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := hook(hookCtx); err != nil {
				log.Error(hookCtx, msgHookFailed, zap.Int("hook", i), zap.Error(err))
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(hookCtx, msgShutdownFinished)
	case <-hookCtx.Done():
		log.Warn(hookCtx, msgShutdownTimeout)
	}
}

// Signal нужен тестам и утилитам, которые инициируют остановку сами.
func Signal() error {
	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		return err
	}
	return p.Signal(syscall.SIGTERM)
}
