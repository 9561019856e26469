package database

import (
	"database/sql"
	"log"
	"strconv"

	_ "github.com/lib/pq" // Driver postgres
)

// ConnectDB opens and pings the postgres connection.
func ConnectDB(username, password, dbname, host string, port int) *sql.DB {
	connSt := "host=" + host + " port=" + strconv.Itoa(port) + " user=" + username + " password=" + password + " dbname=" + dbname + " sslmode=disable"
	db, err := sql.Open("postgres", connSt)
	if err != nil {
		log.Fatal(err)
	}
	err = db.Ping()
	if err != nil {
		log.Fatal(err)
	}
	log.Println("Connected to DB " + dbname + " successfully on port " + strconv.Itoa(port))
	return db
}
