// Command outbreaks fetches the latest IDSP weekly bulletin links and prints
// them as a table. Handy for checking the scraper against the live site.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"swasthya/outbreak"
)

func main() {
	baseURL := flag.String("base-url", outbreak.DefaultBaseURL, "IDSP site base URL")
	weeks := flag.Int("weeks", outbreak.DefaultWeeks, "number of recent bulletins to fetch")
	timeout := flag.Duration("timeout", 30*time.Second, "overall fetch timeout")
	flag.Parse()

	// Optional .env for local runs, same variables as the server.
	_ = godotenv.Load()

	logger := logs.GetLoggerFromString(os.Getenv("LOG_LEVEL"))
	scraper := outbreak.NewScraper(logger, *baseURL)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	links, err := scraper.FetchLinks(ctx, *weeks)
	if err != nil {
		log.Fatal("Error while fetching bulletin links: ", err)
	}

	color.Green.Printf("Found %d bulletin(s)\n\n", len(links))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Week", "Year", "Filename", "URL"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, link := range links {
		table.Append([]string{
			fmt.Sprintf("%d", link.Week),
			fmt.Sprintf("%d", link.Year),
			link.Filename,
			link.URL,
		})
	}
	table.Render()
}
