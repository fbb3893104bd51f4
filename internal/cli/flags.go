package cli

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlag 将命令行标志绑定到配置键，未设置的标志不会覆盖配置文件
func bindFlag(v *viper.Viper, key string, flags *pflag.FlagSet, name string) {
	if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic("绑定命令行标志失败: " + err.Error())
	}
}
