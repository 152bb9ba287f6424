package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"woodshop_builds/internal/domain/entities"
	"woodshop_builds/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBuildsTableName = "builds"

const defaultRemotePullLimit = 500

// buildItem is the DynamoDB shape of a mirrored build: the conflict key and
// the full JSON document. Merge decisions happen client-side on updated_at;
// the mirror itself is a dumb last-write store.
type buildItem struct {
	ID        string `dynamodbav:"id"`
	UpdatedAt string `dynamodbav:"updated_at"`
	Doc       string `dynamodbav:"doc"`
}

// BuildDynamoMirror mirrors build documents to a DynamoDB table.
//
// Table requirements:
//   - PK: id (string)
//
// FetchAll returns the collection ordered by updated_at descending, capped at
// the configured pull limit.

type BuildDynamoMirror struct {
	ddb       *dynamodb.Client
	tableName string
	pullLimit int
}

var _ interfaces.IRemoteMirror = (*BuildDynamoMirror)(nil)

func NewBuildDynamoMirror(ddb *dynamodb.Client) *BuildDynamoMirror {
	limit := defaultRemotePullLimit
	if v := getenvDefault("REMOTE_PULL_LIMIT", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return &BuildDynamoMirror{
		ddb:       ddb,
		tableName: getenvDefault("BUILDS_TABLE", defaultBuildsTableName),
		pullLimit: limit,
	}
}

func (m *BuildDynamoMirror) Enabled() bool {
	return m != nil && m.ddb != nil
}

func (m *BuildDynamoMirror) FetchAll(ctx context.Context) ([]entities.Build, error) {
	var out []entities.Build
	var startKey map[string]types.AttributeValue

	for {
		res, err := m.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(m.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan remote builds: %w", err)
		}
		for _, raw := range res.Items {
			var it buildItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				log.Printf("[mirror][repo] skipping unreadable remote item err=%v", err)
				continue
			}
			var b entities.Build
			if err := json.Unmarshal([]byte(it.Doc), &b); err != nil {
				log.Printf("[mirror][repo] skipping unreadable remote doc id=%s err=%v", it.ID, err)
				continue
			}
			out = append(out, b)
		}
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		startKey = res.LastEvaluatedKey
	}

	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	if len(out) > m.pullLimit {
		out = out[:m.pullLimit]
	}
	return out, nil
}

func (m *BuildDynamoMirror) Push(ctx context.Context, b entities.Build) error {
	doc, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("serialize build %s: %w", b.ID, err)
	}
	av, err := attributevalue.MarshalMap(buildItem{
		ID:        b.ID,
		UpdatedAt: b.UpdatedAt.UTC().Format(time.RFC3339Nano),
		Doc:       string(doc),
	})
	if err != nil {
		return err
	}

	_, err = m.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(m.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("push build %s: %w", b.ID, err)
	}
	return nil
}

func (m *BuildDynamoMirror) Delete(ctx context.Context, id string) error {
	_, err := m.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(m.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return fmt.Errorf("delete remote build %s: %w", id, err)
	}
	return nil
}
