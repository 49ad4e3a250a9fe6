package repository

import (
	"context"
	"errors"

	"autokorea/internal/domain/entities"
	"autokorea/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStaffTableName = "staff"

type staffItem struct {
	ID             string `dynamodbav:"id"`
	Name           string `dynamodbav:"name"`
	PassportNumber string `dynamodbav:"passport_number"`
	Phone          string `dynamodbav:"phone"`
	Email          string `dynamodbav:"email"`
	City           string `dynamodbav:"city"`
	Role           string `dynamodbav:"role"`
	Status         string `dynamodbav:"status"`
	PasswordHash   string `dynamodbav:"password_hash"`
	RegisteredDate string `dynamodbav:"registered_date"`
}

// StaffDynamoRepository persists Staff entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// GetByPassport scans the full table; the roster stays small enough that no
// passport GSI is maintained.
type StaffDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStaffRepository = (*StaffDynamoRepository)(nil)

func NewStaffDynamoRepository(ddb *dynamodb.Client) *StaffDynamoRepository {
	return &StaffDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STAFF_TABLE", defaultStaffTableName),
	}
}

func (r *StaffDynamoRepository) Create(ctx context.Context, s entities.Staff) (entities.Staff, error) {
	av, err := attributevalue.MarshalMap(toStaffItem(s))
	if err != nil {
		return entities.Staff{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Staff{}, err
	}
	return s, nil
}

func (r *StaffDynamoRepository) GetByID(ctx context.Context, id string) (entities.Staff, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Staff{}, err
	}
	if len(out.Item) == 0 {
		return entities.Staff{}, nil
	}

	var it staffItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Staff{}, err
	}
	return fromStaffItem(it), nil
}

func (r *StaffDynamoRepository) GetByPassport(ctx context.Context, passportNumber string) (entities.Staff, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#passport = :passport"),
		ExpressionAttributeNames: map[string]string{
			"#passport": "passport_number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":passport": &types.AttributeValueMemberS{Value: passportNumber},
		},
		Limit: aws.Int32(25),
	})
	if err != nil {
		return entities.Staff{}, err
	}
	if len(out.Items) == 0 {
		return entities.Staff{}, nil
	}

	var it staffItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Staff{}, err
	}
	return fromStaffItem(it), nil
}

func (r *StaffDynamoRepository) List(ctx context.Context) ([]entities.Staff, error) {
	var staff []entities.Staff
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []staffItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			staff = append(staff, fromStaffItem(it))
		}
	}
	return staff, nil
}

func (r *StaffDynamoRepository) Update(ctx context.Context, s entities.Staff) (entities.Staff, error) {
	av, err := attributevalue.MarshalMap(toStaffItem(s))
	if err != nil {
		return entities.Staff{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Staff{}, nil
		}
		return entities.Staff{}, err
	}
	return s, nil
}

func (r *StaffDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toStaffItem(s entities.Staff) staffItem {
	return staffItem{
		ID:             s.ID,
		Name:           s.Name,
		PassportNumber: s.PassportNumber,
		Phone:          s.Phone,
		Email:          s.Email,
		City:           s.City,
		Role:           string(s.Role),
		Status:         string(s.Status),
		PasswordHash:   s.PasswordHash,
		RegisteredDate: timeToString(s.RegisteredDate),
	}
}

func fromStaffItem(it staffItem) entities.Staff {
	return entities.Staff{
		ID:             it.ID,
		Name:           it.Name,
		PassportNumber: it.PassportNumber,
		Phone:          it.Phone,
		Email:          it.Email,
		City:           it.City,
		Role:           entities.StaffRole(it.Role),
		Status:         entities.StaffStatus(it.Status),
		PasswordHash:   it.PasswordHash,
		RegisteredDate: stringToTime(it.RegisteredDate),
	}
}
