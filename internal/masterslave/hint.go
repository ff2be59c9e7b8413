package masterslave

import "context"

type useMasterKey struct{}

// UseMaster 强制走主库，一般来自于 proxy hint 里面的 useMaster 标记
func UseMaster(ctx context.Context) context.Context {
	return context.WithValue(ctx, useMasterKey{}, true)
}

func IsUseMaster(ctx context.Context) bool {
	val, ok := ctx.Value(useMasterKey{}).(bool)
	return ok && val
}
