package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/shopnext/shopnext/internal/products"
)

var productsCommand = &cli.Command{
	Name:  "products",
	Usage: "List products",
	Flags: []cli.Flag{
		cliFlagOutput,
	},
	Action: productsList,
}

func productsList(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting shopnext client")
	}
	store, err := getSessionStore()
	if err != nil {
		return err
	}

	fetcher := products.NewFetcher(store, client.Products())
	result, err := fetcher.Fetch(c.Context)
	if err != nil {
		return err
	}

	return renderProducts(result, output)
}

func renderProducts(result json.RawMessage, output string) error {
	switch strings.ToLower(output) {
	case "table":
		// The product collection's shape is the server's business. A table
		// is only possible when it is a list of records; anything else is
		// shown as JSON.
		items := []map[string]interface{}{}
		if err := json.Unmarshal(result, &items); err != nil {
			return renderProducts(result, "json")
		}
		if len(items) == 0 {
			fmt.Println("No products found.")
			return nil
		}
		columns := []string{}
		for column := range items[0] {
			columns = append(columns, column)
		}
		sort.Strings(columns)
		table := uitable.New()
		header := make([]interface{}, len(columns))
		for i, column := range columns {
			header[i] = strings.ToUpper(column)
		}
		table.AddRow(header...)
		for _, item := range items {
			row := make([]interface{}, len(columns))
			for i, column := range columns {
				row[i] = item[column]
			}
			table.AddRow(row...)
		}
		fmt.Println(table)

	case "json":
		prettyJSON, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list products operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}
	return nil
}
