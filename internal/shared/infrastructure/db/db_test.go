package db

import (
	"testing"

	"HexRealm/internal/shared/serverconfig"
)

func TestDSN(t *testing.T) {
	got := DSN(serverconfig.MySQLConfig{Host: "127.0.0.1", Port: 3306, User: "root", Password: "pw", DBName: "hexrealm"})
	want := "root:pw@tcp(127.0.0.1:3306)/hexrealm?charset=utf8mb4&parseTime=True&loc=Local"
	if got != want {
		t.Fatalf("DSN got=%q want=%q", got, want)
	}
}
