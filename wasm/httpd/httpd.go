// A development server for the wasm build. Serves the contents of the www
// directory, making sure .wasm files carry the content type browsers
// require for streaming compilation.
package main

import (
	"log"
	"net/http"
	"strings"
)

type handler struct {
	fileHandler http.Handler
}

func Handler() *handler {
	hnd := handler{
		fileHandler: http.FileServer(http.Dir("www")),
	}
	return &hnd
}

func (hnd *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("%s %s", r.Method, r.RequestURI)
	if strings.HasSuffix(r.RequestURI, ".wasm") {
		w.Header().Set("Content-Type", "application/wasm")
	}
	hnd.fileHandler.ServeHTTP(w, r)
}

func main() {
	log.Println("test server listening on localhost:8080")
	err := http.ListenAndServe(":8080", Handler())
	if err != nil {
		log.Fatalln(err.Error())
	}
}
