package serverconfig

import "time"

type Config struct {
	HTTPServer HTTPServerConfig `yaml:"httpserver" mapstructure:"httpserver"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
	Editor     EditorConfig     `yaml:"editor" mapstructure:"editor"`
	Catalog    CatalogConfig    `yaml:"catalog" mapstructure:"catalog"`
	MongoDB    MongoDBConfig    `yaml:"mongodb" mapstructure:"mongodb"`
	MySQL      MySQLConfig      `yaml:"mysql" mapstructure:"mysql"`
}

type HTTPServerConfig struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port int    `yaml:"port" mapstructure:"port"`
	// WSPath 为空时不挂载 WebSocket
	WSPath string `yaml:"ws_path" mapstructure:"ws_path"`
}

type LogConfig struct {
	FileDir    string `yaml:"file_dir" mapstructure:"file_dir"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"` // days
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Level      string `yaml:"level" mapstructure:"level"` // debug/info/warn/error...
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
}

// EditorConfig 是新建地图时的默认参数。
type EditorConfig struct {
	Width      int           `yaml:"width" mapstructure:"width"`
	Height     int           `yaml:"height" mapstructure:"height"`
	Policy     string        `yaml:"policy" mapstructure:"policy"` // uniform/random/preset/noise
	Preset     string        `yaml:"preset" mapstructure:"preset"`
	Fill       string        `yaml:"fill" mapstructure:"fill"`
	Seed       int64         `yaml:"seed" mapstructure:"seed"`
	AskTimeout time.Duration `yaml:"ask_timeout" mapstructure:"ask_timeout"`
	Layout     LayoutConfig  `yaml:"layout" mapstructure:"layout"`
}

type LayoutConfig struct {
	Side    float64 `yaml:"side" mapstructure:"side"`
	Apothem float64 `yaml:"apothem" mapstructure:"apothem"` // 0 表示按正六边形由 side 推出
}

type CatalogConfig struct {
	// Drivers 按查找顺序排列：builtin/dir/mongodb/mysql，为空时只用 builtin
	Drivers []string `yaml:"drivers" mapstructure:"drivers"`
	Dir     string   `yaml:"dir" mapstructure:"dir"`
}

type MongoDBConfig struct {
	URI             string `yaml:"uri" mapstructure:"uri"`
	Database        string `yaml:"database" mapstructure:"database"`
	ConnectTimeoutS int    `yaml:"connect_timeout_s" mapstructure:"connect_timeout_s"`
}

type MySQLConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	User     string `yaml:"user" mapstructure:"user"`
	Password string `yaml:"password" mapstructure:"password"`
	DBName   string `yaml:"dbname" mapstructure:"dbname"`
	Charset  string `yaml:"charset" mapstructure:"charset"`
	MaxIdle  int    `yaml:"max_idle" mapstructure:"max_idle"`
	MaxConn  int    `yaml:"max_conn" mapstructure:"max_conn"`
}

// Default 是配置文件缺省字段的取值。
func Default() Config {
	return Config{
		HTTPServer: HTTPServerConfig{Host: "127.0.0.1", Port: 8080, WSPath: "/ws"},
		Log:        LogConfig{Level: "info", MaxSize: 64, MaxBackups: 3, MaxAge: 7},
		Editor: EditorConfig{
			Policy:     "preset",
			Preset:     "island",
			Fill:       "grass",
			AskTimeout: 3 * time.Second,
			Layout:     LayoutConfig{Side: 32},
		},
		MongoDB: MongoDBConfig{ConnectTimeoutS: 3},
		MySQL:   MySQLConfig{Port: 3306, Charset: "utf8mb4", MaxIdle: 2, MaxConn: 10},
	}
}
