/*
Package wwart is a library for cataloguing the IFF picture assets of the
classic Westwood games.
*/
package wwart

import "log"

type Catalog struct {
	db     *ArtDB
	logger *log.Logger
}

func New(file string, logger *log.Logger) (*Catalog, error) {
	db, err := NewArtDB(file)
	if err != nil {
		return nil, err
	}
	return &Catalog{
		db:     db,
		logger: logger,
	}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}
