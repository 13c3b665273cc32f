// Package config 用 viper 读取 YAML 配置并监听文件变化。
package config

import (
	"os"
	"path/filepath"

	"HexRealm/modules/kit/errx"
)

const DefaultConfigRelPath = "configs/conf.yml"

// ErrConfigNotFound 配置文件不存在或向上查找失败。
var ErrConfigNotFound = errx.NewSys("CONFIG_NOT_FOUND", "配置文件不存在")

// Resolve 确定配置文件路径：
// 1) 传入 cfgName（相对/绝对路径）则优先使用；
// 2) 否则从当前目录开始向上查找 `configs/conf.yml`。
func Resolve(cfgName string) (string, error) {
	curDir, err := os.Getwd()
	if err != nil {
		return "", ErrConfigNotFound.WithCause(err)
	}
	if cfgName != "" {
		p := cfgName
		if !filepath.IsAbs(p) {
			p = filepath.Join(curDir, p)
		}
		if !fileExist(p) {
			return "", ErrConfigNotFound.WithData("path", p)
		}
		return p, nil
	}
	return findConfigUpward(curDir)
}

func findConfigUpward(startDir string) (string, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, DefaultConfigRelPath)
		if fileExist(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound.WithData("from", startDir)
		}
		dir = parent
	}
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}
