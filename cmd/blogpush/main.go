// blogpush parses markdown article files and uploads them to a penmark
// site over the HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/emrekoca/penmark/internal/upload"
)

func main() {
	apiURL := flag.String("api", "http://localhost:8080/api", "Content API base URL")
	site := flag.String("site", "", "Target site name")
	apiKey := flag.String("key", "", "Site API key (or PENMARK_API_KEY)")
	flag.Parse()

	if *apiKey == "" {
		*apiKey = os.Getenv("PENMARK_API_KEY")
	}
	if *site == "" {
		log.Fatal("-site is required")
	}
	if flag.NArg() == 0 {
		log.Fatal("usage: blogpush -site <name> [-key <api-key>] <file.md> [file.md ...]")
	}

	client, err := upload.NewClient(*apiURL, *apiKey)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	failed := 0
	for _, path := range flag.Args() {
		doc, err := upload.ParseFile(path)
		if err != nil {
			log.Printf("%s: %v", filepath.Base(path), err)
			failed++
			continue
		}

		id, err := client.CreateArticle(ctx, *site, upload.CreateArticleRequest{
			Language: doc.Meta.Language,
			Slug:     doc.Meta.Slug,
			Title:    doc.Meta.Title,
			Excerpt:  doc.Meta.Excerpt,
			Date:     doc.Meta.Date,
			Status:   doc.Meta.Status,
			Content:  doc.Content,
		})
		if err != nil {
			log.Printf("%s: upload failed: %v", filepath.Base(path), err)
			failed++
			continue
		}
		fmt.Printf("uploaded %s (%s/%s) -> %s\n", filepath.Base(path), doc.Meta.Language, doc.Meta.Slug, id)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
