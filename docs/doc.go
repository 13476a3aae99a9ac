// Package docs provides generated OpenAPI documentation.
//
// Indexcards API
//
//	@title			Indexcards API
//	@version		1.0
//	@description	Archival metadata export engine for scanned index-card batches.
//
//	@contact.name	API Support
//	@contact.url	https://github.com/p5hema2/Indexcards-OCR
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:3000
//	@BasePath	/
//
//	@schemes	http https
package docs

//go:generate swag init -g ../cmd/indexcards/serve.go -o ./swagger --parseDependency --parseInternal
