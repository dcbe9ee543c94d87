package dictionary

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

// DefaultWordsTable holds one row per (word, scope).
const DefaultWordsTable = "wordbrain.dictionary.all_words"

// FetchWords reads every word of the given scope (a language such as "en_US") from BigQuery.
func FetchWords(ctx context.Context, projectID, table, scope string) ([]string, error) {
	if table == "" {
		table = DefaultWordsTable
	}

	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	q := client.Query(fmt.Sprintf("SELECT word FROM `%s` WHERE scope = @scope", table))
	q.Parameters = []bigquery.QueryParameter{{Name: "scope", Value: scope}}
	q.Location = "US"

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		words = append(words, word)
	}
	return words, nil
}
