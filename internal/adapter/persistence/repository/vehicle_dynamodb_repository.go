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

const defaultVehiclesTableName = "vehicles"

type vehicleItem struct {
	ID           string  `dynamodbav:"id"`
	Brand        string  `dynamodbav:"brand"`
	Model        string  `dynamodbav:"model"`
	Year         int     `dynamodbav:"year"`
	VIN          string  `dynamodbav:"vin"`
	Mileage      int     `dynamodbav:"mileage"`
	Color        string  `dynamodbav:"color"`
	EngineVolume float64 `dynamodbav:"engine_volume"`
	FuelType     string  `dynamodbav:"fuel_type"`
	Transmission string  `dynamodbav:"transmission"`
	DriveType    string  `dynamodbav:"drive_type"`
	SteeringSide string  `dynamodbav:"steering_side"`
	Condition    string  `dynamodbav:"condition"`
	DamageNote   string  `dynamodbav:"damage_note"`
	Status       string  `dynamodbav:"status"`

	PurchasePrice string `dynamodbav:"purchase_price"`
	DeliveryCost  string `dynamodbav:"delivery_cost"`
	CustomsCost   string `dynamodbav:"customs_cost"`
	RepairCost    string `dynamodbav:"repair_cost"`
	OtherCost     string `dynamodbav:"other_cost"`
	SellingPrice  string `dynamodbav:"selling_price"`

	Manager      string `dynamodbav:"manager"`
	CreatedAt    string `dynamodbav:"created_at"`
	PurchaseDate string `dynamodbav:"purchase_date"`
	ArrivalDate  string `dynamodbav:"arrival_date"`
	SoldDate     string `dynamodbav:"sold_date"`
}

// VehicleDynamoRepository persists Vehicle entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// List is a Scan: the whole inventory is a few hundred records at most and
// the finance derivations need the full collection anyway, so a GSI per
// filter would buy nothing. Status/manager filters run server-side, the
// limit client-side because DynamoDB applies Limit before FilterExpression.
type VehicleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	av, err := attributevalue.MarshalMap(toVehicleItem(v))
	if err != nil {
		return entities.Vehicle{}, err
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
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) List(ctx context.Context, filter interfaces.VehicleFilter) ([]entities.Vehicle, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	expr := ""
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if filter.Status != "" {
		expr = "#status = :status"
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	}
	if filter.Manager != "" {
		if expr != "" {
			expr += " AND "
		}
		expr += "#manager = :manager"
		names["#manager"] = "manager"
		values[":manager"] = &types.AttributeValueMemberS{Value: filter.Manager}
	}
	if expr != "" {
		input.FilterExpression = aws.String(expr)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var vehicles []entities.Vehicle
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []vehicleItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			vehicles = append(vehicles, fromVehicleItem(it))
			if filter.Limit > 0 && len(vehicles) >= filter.Limit {
				return vehicles, nil
			}
		}
	}
	return vehicles, nil
}

func (r *VehicleDynamoRepository) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	av, err := attributevalue.MarshalMap(toVehicleItem(v))
	if err != nil {
		return entities.Vehicle{}, err
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
			return entities.Vehicle{}, nil
		}
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		ID:           v.ID,
		Brand:        v.Brand,
		Model:        v.Model,
		Year:         v.Year,
		VIN:          v.VIN,
		Mileage:      v.Mileage,
		Color:        v.Color,
		EngineVolume: v.EngineVolume,
		FuelType:     string(v.FuelType),
		Transmission: string(v.Transmission),
		DriveType:    string(v.DriveType),
		SteeringSide: string(v.SteeringSide),
		Condition:    string(v.Condition),
		DamageNote:   v.DamageNote,
		Status:       string(v.Status),

		PurchasePrice: floatToString(v.PurchasePrice),
		DeliveryCost:  floatToString(v.DeliveryCost),
		CustomsCost:   floatToString(v.CustomsCost),
		RepairCost:    floatToString(v.RepairCost),
		OtherCost:     floatToString(v.OtherCost),
		SellingPrice:  floatToString(v.SellingPrice),

		Manager:      v.Manager,
		CreatedAt:    timeToString(v.CreatedAt),
		PurchaseDate: timePtrToString(v.PurchaseDate),
		ArrivalDate:  timePtrToString(v.ArrivalDate),
		SoldDate:     timePtrToString(v.SoldDate),
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	return entities.Vehicle{
		ID:           it.ID,
		Brand:        it.Brand,
		Model:        it.Model,
		Year:         it.Year,
		VIN:          it.VIN,
		Mileage:      it.Mileage,
		Color:        it.Color,
		EngineVolume: it.EngineVolume,
		FuelType:     entities.FuelType(it.FuelType),
		Transmission: entities.Transmission(it.Transmission),
		DriveType:    entities.DriveType(it.DriveType),
		SteeringSide: entities.SteeringSide(it.SteeringSide),
		Condition:    entities.Condition(it.Condition),
		DamageNote:   it.DamageNote,
		Status:       entities.ParseVehicleStatus(it.Status),

		PurchasePrice: stringToFloat(it.PurchasePrice),
		DeliveryCost:  stringToFloat(it.DeliveryCost),
		CustomsCost:   stringToFloat(it.CustomsCost),
		RepairCost:    stringToFloat(it.RepairCost),
		OtherCost:     stringToFloat(it.OtherCost),
		SellingPrice:  stringToFloat(it.SellingPrice),

		Manager:      it.Manager,
		CreatedAt:    stringToTime(it.CreatedAt),
		PurchaseDate: stringToTimePtr(it.PurchaseDate),
		ArrivalDate:  stringToTimePtr(it.ArrivalDate),
		SoldDate:     stringToTimePtr(it.SoldDate),
	}
}
