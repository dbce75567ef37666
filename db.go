package wwart

import (
	"database/sql"
	"fmt"

	"github.com/bodgit/wwart/picture"
	_ "github.com/mattn/go-sqlite3"
)

// ArtDB is the sqlite backed picture catalog. Pictures are deduplicated by
// the SHA-1 of their file contents; each picture can be known under any
// number of filename checksums.
type ArtDB struct {
	db *sql.DB
}

func NewArtDB(file string) (*ArtDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS picture (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, crc TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, planes INTEGER NOT NULL, form TEXT NOT NULL, compressed INTEGER NOT NULL, preview BLOB NOT NULL)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS name (picture_id INTEGER NOT NULL, crc INTEGER NOT NULL UNIQUE, FOREIGN KEY(picture_id) REFERENCES picture(id))"); err != nil {
		return nil, err
	}

	return &ArtDB{
		db: db,
	}, nil
}

func (db *ArtDB) Close() error {
	return db.db.Close()
}

// AddPicture stores a catalog row for the picture with the given content
// hashes, header and preview, returning its id. A picture already known
// under the same SHA-1 is not stored twice.
func (db *ArtDB) AddPicture(sha, crc string, h picture.BitmapHeader, kind picture.FormKind, preview []byte) (int64, error) {
	var id int64
	switch err := db.db.QueryRow("SELECT id FROM picture WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := db.db.Exec("INSERT INTO picture (sha1, crc, width, height, planes, form, compressed, preview) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			sha, crc, h.Width, h.Height, h.Planes, kind.String(), h.Compression == picture.CompressByteRun, preview)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

// AddName records that the picture is known under the given filename
// checksum.
func (db *ArtDB) AddName(pictureID int64, crc uint32) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO name (picture_id, crc) VALUES (?, ?)", pictureID, crc); err != nil {
		return err
	}
	return nil
}

// FindPreviewByName returns the preview raster of the picture known under
// the given filename checksum, or nil when there is no match.
func (db *ArtDB) FindPreviewByName(crc uint32) ([]byte, error) {
	var preview []byte
	switch err := db.db.QueryRow("SELECT p.preview FROM name AS n JOIN picture AS p ON n.picture_id = p.id WHERE n.crc = ?", crc).Scan(&preview); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return preview, nil
	default:
		return nil, err
	}
}
