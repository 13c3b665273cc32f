package config

import (
	"HexRealm/modules/kit/errx"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// ErrConfigDecode 配置内容无法解析或类型不匹配。
var ErrConfigDecode = errx.NewSys("CONFIG_DECODE", "配置解析失败")

// Watcher 持有 viper 实例，文件变化时把新内容解码后交给 onChange。
type Watcher struct {
	v    *viper.Viper
	path string
}

func decodeHooks() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	))
}

// Load 读取 path 并解码到 out（必须是指针）。
func Load(path string, out any) (*Watcher, error) {
	if !fileExist(path) {
		return nil, ErrConfigNotFound.WithData("path", path)
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, ErrConfigDecode.WithData("path", path).WithCause(err)
	}
	if err := v.Unmarshal(out, decodeHooks()); err != nil {
		return nil, ErrConfigDecode.WithData("path", path).WithCause(err)
	}
	return &Watcher{v: v, path: path}, nil
}

func (w *Watcher) Path() string {
	return w.path
}

// Watch 开始监听文件。每次变化都用 newOut 生成新的目标值并解码，
// 解码失败时把错误交给 onErr，旧配置保持不变。
func (w *Watcher) Watch(newOut func() any, onChange func(out any), onErr func(err error)) {
	w.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		out := newOut()
		if err := w.v.Unmarshal(out, decodeHooks()); err != nil {
			if onErr != nil {
				onErr(ErrConfigDecode.WithData("path", w.path).WithCause(err))
			}
			return
		}
		onChange(out)
	})
	w.v.WatchConfig()
}
