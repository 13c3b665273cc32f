package serverconfig

import (
	"HexRealm/internal/shared/config"
	"sync"
)

var (
	mu       sync.RWMutex
	conf     Config
	watchers []func(Config)
)

// Load 读取配置文件（cfgName 为空时向上查找 configs/conf.yml）并开始监听变化。
func Load(cfgName string, onErr func(error)) (Config, error) {
	path, err := config.Resolve(cfgName)
	if err != nil {
		return Config{}, err
	}
	c := Default()
	w, err := config.Load(path, &c)
	if err != nil {
		return Config{}, err
	}
	set(c)
	w.Watch(func() any {
		next := Default()
		return &next
	}, func(out any) {
		set(*out.(*Config))
	}, onErr)
	return c, nil
}

// Get 返回当前配置的拷贝，热更新期间可并发调用。
func Get() Config {
	mu.RLock()
	defer mu.RUnlock()
	return conf
}

// OnChange 注册热更新回调；回调在 fsnotify 的 goroutine 里执行。
func OnChange(fn func(Config)) {
	mu.Lock()
	defer mu.Unlock()
	watchers = append(watchers, fn)
}

func set(c Config) {
	mu.Lock()
	conf = c
	fns := append([]func(Config){}, watchers...)
	mu.Unlock()
	for _, fn := range fns {
		fn(c)
	}
}
