package repository

import (
	"context"

	"autokorea/internal/domain/entities"
	"autokorea/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSettingsTableName = "settings"
	calculatorSettingsKey    = "calculator"
)

type settingsItem struct {
	ID                 string            `dynamodbav:"id"`
	ExchangeRate       string            `dynamodbav:"exchange_rate"`
	DeliveryTiers      map[string]string `dynamodbav:"delivery_tiers"`
	AgeRate            string            `dynamodbav:"age_rate"`
	CustomsDutyPercent string            `dynamodbav:"customs_duty_percent"`
	VATPercent         string            `dynamodbav:"vat_percent"`
	RecyclingFee       string            `dynamodbav:"recycling_fee"`
	DisplayRate        string            `dynamodbav:"display_rate"`
}

// SettingsDynamoRepository persists the singleton calculator tariff schedule.
//
// Storage model (DynamoDB):
//   - PK: id, always "calculator" (one document, overwritten wholesale)
type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) Get(ctx context.Context) (entities.CalculatorSettings, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: calculatorSettingsKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CalculatorSettings{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.CalculatorSettings{}, false, nil
	}

	var it settingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CalculatorSettings{}, false, err
	}
	return fromSettingsItem(it), true, nil
}

func (r *SettingsDynamoRepository) Save(ctx context.Context, s entities.CalculatorSettings) error {
	av, err := attributevalue.MarshalMap(toSettingsItem(s))
	if err != nil {
		return err
	}

	// Wholesale overwrite, no condition: last write wins.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toSettingsItem(s entities.CalculatorSettings) settingsItem {
	tiers := make(map[string]string, len(s.DeliveryTiers))
	for tier, price := range s.DeliveryTiers {
		tiers[tier] = floatToString(price)
	}
	return settingsItem{
		ID:                 calculatorSettingsKey,
		ExchangeRate:       floatToString(s.ExchangeRate),
		DeliveryTiers:      tiers,
		AgeRate:            floatToString(s.AgeRate),
		CustomsDutyPercent: floatToString(s.CustomsDutyPercent),
		VATPercent:         floatToString(s.VATPercent),
		RecyclingFee:       floatToString(s.RecyclingFee),
		DisplayRate:        floatToString(s.DisplayRate),
	}
}

func fromSettingsItem(it settingsItem) entities.CalculatorSettings {
	tiers := make(map[string]float64, len(it.DeliveryTiers))
	for tier, price := range it.DeliveryTiers {
		tiers[tier] = stringToFloat(price)
	}
	return entities.CalculatorSettings{
		ExchangeRate:       stringToFloat(it.ExchangeRate),
		DeliveryTiers:      tiers,
		AgeRate:            stringToFloat(it.AgeRate),
		CustomsDutyPercent: stringToFloat(it.CustomsDutyPercent),
		VATPercent:         stringToFloat(it.VATPercent),
		RecyclingFee:       stringToFloat(it.RecyclingFee),
		DisplayRate:        stringToFloat(it.DisplayRate),
	}
}
