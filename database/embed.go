// Package database embed dosyası — migration SQL dosyalarını binary'ye gömer.
// Deploy edilen binary yanında migration dosyalarına ihtiyaç duymaz.
package database

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migrations, gömülü migration dosyalarını migrations/ alt dizini soyulmuş
// bir fs.FS olarak döner. database.New'a doğrudan geçilir.
func Migrations() fs.FS {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		// embed derleme zamanında garanti — buraya düşmesi programlama hatasıdır.
		panic(err)
	}
	return sub
}
