package repository

import (
	"context"
	"strings"
	"time"

	"waste_pickup/internal/domain/entities"
	"waste_pickup/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRequestsTableName = "pickup_requests"
	requestsUserIDIndex      = "user_id-index"
	requestsSlotDateIndex    = "slot_date-index"
	requestsStatusIndex      = "status-index"
)

type addressItem struct {
	Line1   string   `dynamodbav:"line1"`
	Line2   string   `dynamodbav:"line2,omitempty"`
	City    string   `dynamodbav:"city"`
	Pincode string   `dynamodbav:"pincode"`
	Lat     *float64 `dynamodbav:"lat,omitempty"`
	Lng     *float64 `dynamodbav:"lng,omitempty"`
}

type slotItem struct {
	Start string `dynamodbav:"start"`
	End   string `dynamodbav:"end"`
}

type eventItem struct {
	Type string         `dynamodbav:"type"`
	At   string         `dynamodbav:"at"`
	By   string         `dynamodbav:"by"`
	Data map[string]any `dynamodbav:"data,omitempty"`
}

type pickupRequestItem struct {
	ID             string      `dynamodbav:"id"`
	UserID         string      `dynamodbav:"user_id"`
	Category       string      `dynamodbav:"category"`
	IsSpecial      bool        `dynamodbav:"is_special"`
	Description    string      `dynamodbav:"description"`
	Quantity       float64     `dynamodbav:"quantity"`
	Photos         []string    `dynamodbav:"photos"`
	Address        addressItem `dynamodbav:"address"`
	ContactEmail   string      `dynamodbav:"contact_email,omitempty"`
	PreferredSlots []slotItem  `dynamodbav:"preferred_slots"`
	AssignedSlot   *slotItem   `dynamodbav:"assigned_slot,omitempty"`
	SlotDate       string      `dynamodbav:"slot_date,omitempty"`
	SlotStart      string      `dynamodbav:"slot_start,omitempty"`
	VendorID       string      `dynamodbav:"vendor_id,omitempty"`
	Status         string      `dynamodbav:"status"`
	Events         []eventItem `dynamodbav:"events"`
	RewardPoints   int         `dynamodbav:"reward_points"`
	Version        int64       `dynamodbav:"version"`
	CreatedAt      string      `dynamodbav:"created_at"`
	UpdatedAt      string      `dynamodbav:"updated_at"`
}

// PickupRequestDynamoRepository persists PickupRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI user_id-index (PK: user_id, SK: created_at)
//   - GSI slot_date-index (PK: slot_date, SK: slot_start)
//   - GSI status-index (PK: status, SK: created_at)
//
// slot_date is the calendar day of the assigned slot in the slot timezone, so
// conflict lookups for a day hit a single index partition.

type PickupRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	loc       *time.Location
}

var _ interfaces.IPickupRequestRepository = (*PickupRequestDynamoRepository)(nil)

func NewPickupRequestDynamoRepository(ddb *dynamodb.Client, loc *time.Location) *PickupRequestDynamoRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &PickupRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
		loc:       loc,
	}
}

func (r *PickupRequestDynamoRepository) Create(ctx context.Context, p entities.PickupRequest) (entities.PickupRequest, error) {
	it := toPickupRequestItem(p, r.loc)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PickupRequest{}, err
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
		return entities.PickupRequest{}, err
	}
	return p, nil
}

func (r *PickupRequestDynamoRepository) Get(ctx context.Context, id string, ownerID string) (entities.PickupRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PickupRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.PickupRequest{}, nil
	}

	var it pickupRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PickupRequest{}, err
	}
	if ownerID != "" && it.UserID != ownerID {
		return entities.PickupRequest{}, nil
	}
	return fromPickupRequestItem(it), nil
}

func (r *PickupRequestDynamoRepository) Update(ctx context.Context, id string, expectedVersion int64, upd entities.RequestUpdate) (entities.PickupRequest, error) {
	expr, values, names, err := buildRequestUpdate(upd, r.loc, time.Now())
	if err != nil {
		return entities.PickupRequest{}, err
	}
	values[":expected"] = &types.AttributeValueMemberN{Value: int64ToString(expectedVersion)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:                 aws.String("attribute_exists(#id) AND #version = :expected"),
		UpdateExpression:                    aws.String(expr),
		ExpressionAttributeValues:           values,
		ExpressionAttributeNames:            mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if old, ok := conditionFailed(err); ok {
			if len(old) == 0 {
				return entities.PickupRequest{}, nil
			}
			return entities.PickupRequest{}, interfaces.ErrVersionConflict
		}
		return entities.PickupRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PickupRequest{}, nil
	}
	var it pickupRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PickupRequest{}, err
	}
	return fromPickupRequestItem(it), nil
}

// AppendEvent appends without a version check; appends commute.
func (r *PickupRequestDynamoRepository) AppendEvent(ctx context.Context, id string, event entities.RequestEvent) error {
	expr, values, names, err := buildRequestUpdate(entities.RequestUpdate{Event: &event}, r.loc, time.Now())
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
	})
	if _, ok := conditionFailed(err); ok {
		return nil
	}
	return err
}

func (r *PickupRequestDynamoRepository) ListByUser(ctx context.Context, userID string, filter entities.RequestFilter) ([]entities.PickupRequest, int, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	}

	var filters []string
	names := map[string]string{}
	if filter.Status != "" {
		filters = append(filters, "#status = :status")
		names["#status"] = "status"
		input.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	}
	if filter.Category != "" {
		filters = append(filters, "#category = :category")
		names["#category"] = "category"
		input.ExpressionAttributeValues[":category"] = &types.AttributeValueMemberS{Value: string(filter.Category)}
	}
	if len(filters) > 0 {
		input.FilterExpression = aws.String(strings.Join(filters, " AND "))
		input.ExpressionAttributeNames = names
	}

	all, err := r.queryAll(ctx, input)
	if err != nil {
		return nil, 0, err
	}
	total := len(all)
	if filter.Skip >= total {
		return []entities.PickupRequest{}, total, nil
	}
	end := total
	if filter.Limit > 0 && filter.Skip+filter.Limit < total {
		end = filter.Skip + filter.Limit
	}
	return all[filter.Skip:end], total, nil
}

// FindSlotsInRange returns active requests whose assigned slot starts in
// [start, end). One index query is issued per calendar day in the range.
func (r *PickupRequestDynamoRepository) FindSlotsInRange(ctx context.Context, start, end time.Time) ([]entities.PickupRequest, error) {
	if !end.After(start) {
		return []entities.PickupRequest{}, nil
	}
	lower := formatTime(start)
	upper := formatTime(end.Add(-time.Nanosecond))

	var out []entities.PickupRequest
	for _, day := range daysBetween(start, end, r.loc) {
		items, err := r.queryAll(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(requestsSlotDateIndex),
			KeyConditionExpression: aws.String("slot_date = :day AND slot_start BETWEEN :lower AND :upper"),
			FilterExpression:       aws.String("NOT (#status IN (:cancelled, :failed))"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":day":       &types.AttributeValueMemberS{Value: day},
				":lower":     &types.AttributeValueMemberS{Value: lower},
				":upper":     &types.AttributeValueMemberS{Value: upper},
				":cancelled": &types.AttributeValueMemberS{Value: string(entities.RequestStatusCancelled)},
				":failed":    &types.AttributeValueMemberS{Value: string(entities.RequestStatusFailed)},
			},
		})
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	if out == nil {
		out = []entities.PickupRequest{}
	}
	return out, nil
}

func (r *PickupRequestDynamoRepository) DeleteStaleDrafts(ctx context.Context, olderThan time.Time) (int, error) {
	drafts, err := r.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestsStatusIndex),
		KeyConditionExpression: aws.String("#status = :draft AND created_at < :threshold"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":draft":     &types.AttributeValueMemberS{Value: string(entities.RequestStatusDraft)},
			":threshold": &types.AttributeValueMemberS{Value: formatTime(olderThan)},
		},
	})
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, d := range drafts {
		// The index is eventually consistent; re-check status on the base table.
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: d.ID},
			},
			ConditionExpression: aws.String("#status = :draft"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":draft": &types.AttributeValueMemberS{Value: string(entities.RequestStatusDraft)},
			},
		})
		if err != nil {
			if _, ok := conditionFailed(err); ok {
				continue
			}
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

// ListByStatus reads status-index; results are eventually consistent.
func (r *PickupRequestDynamoRepository) ListByStatus(ctx context.Context, status entities.RequestStatus, createdAfter time.Time) ([]entities.PickupRequest, error) {
	return r.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status AND created_at > :since"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
			":since":  &types.AttributeValueMemberS{Value: formatTime(createdAfter)},
		},
	})
}

func (r *PickupRequestDynamoRepository) queryAll(ctx context.Context, input *dynamodb.QueryInput) ([]entities.PickupRequest, error) {
	var items []entities.PickupRequest
	paginator := dynamodb.NewQueryPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it pickupRequestItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromPickupRequestItem(it))
		}
	}
	return items, nil
}

// buildRequestUpdate renders a RequestUpdate as one SET expression. The
// version is always bumped.
func buildRequestUpdate(upd entities.RequestUpdate, loc *time.Location, now time.Time) (string, map[string]types.AttributeValue, map[string]string, error) {
	sets := []string{"#version = #version + :one", "#updated_at = :updated_at"}
	values := map[string]types.AttributeValue{
		":one":        &types.AttributeValueMemberN{Value: "1"},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(now)},
	}
	names := map[string]string{
		"#version":    "version",
		"#updated_at": "updated_at",
	}

	if upd.Status != nil {
		sets = append(sets, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(*upd.Status)}
	}
	if upd.AssignedSlot != nil {
		slotAV, err := attributevalue.Marshal(toSlotItem(*upd.AssignedSlot))
		if err != nil {
			return "", nil, nil, err
		}
		sets = append(sets, "#assigned_slot = :slot", "#slot_date = :slot_date", "#slot_start = :slot_start")
		names["#assigned_slot"] = "assigned_slot"
		names["#slot_date"] = "slot_date"
		names["#slot_start"] = "slot_start"
		values[":slot"] = slotAV
		values[":slot_date"] = &types.AttributeValueMemberS{Value: slotDate(upd.AssignedSlot.Start, loc)}
		values[":slot_start"] = &types.AttributeValueMemberS{Value: formatTime(upd.AssignedSlot.Start)}
	}
	if upd.AddRewardPoints != 0 {
		sets = append(sets, "#reward_points = if_not_exists(#reward_points, :zero) + :points")
		names["#reward_points"] = "reward_points"
		values[":zero"] = &types.AttributeValueMemberN{Value: "0"}
		values[":points"] = &types.AttributeValueMemberN{Value: int64ToString(int64(upd.AddRewardPoints))}
	}
	if upd.Event != nil {
		eventAV, err := attributevalue.Marshal([]eventItem{toEventItem(*upd.Event)})
		if err != nil {
			return "", nil, nil, err
		}
		sets = append(sets, "#events = list_append(if_not_exists(#events, :empty), :event)")
		names["#events"] = "events"
		values[":empty"] = &types.AttributeValueMemberL{Value: []types.AttributeValue{}}
		values[":event"] = eventAV
	}

	return "SET " + strings.Join(sets, ", "), values, names, nil
}

func daysBetween(start, end time.Time, loc *time.Location) []string {
	s := start.In(loc)
	y, m, d := s.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, loc)
	var out []string
	for day.Before(end) {
		out = append(out, day.Format(time.DateOnly))
		day = day.AddDate(0, 0, 1)
	}
	return out
}

func slotDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(time.DateOnly)
}

func toSlotItem(w entities.SlotWindow) slotItem {
	return slotItem{Start: formatTime(w.Start), End: formatTime(w.End)}
}

func fromSlotItem(it slotItem) entities.SlotWindow {
	return entities.SlotWindow{Start: parseTime(it.Start), End: parseTime(it.End)}
}

func toEventItem(e entities.RequestEvent) eventItem {
	return eventItem{Type: string(e.Type), At: formatTime(e.At), By: e.By, Data: e.Data}
}

func toPickupRequestItem(p entities.PickupRequest, loc *time.Location) pickupRequestItem {
	preferred := make([]slotItem, 0, len(p.PreferredSlots))
	for _, w := range p.PreferredSlots {
		preferred = append(preferred, toSlotItem(w))
	}
	events := make([]eventItem, 0, len(p.Events))
	for _, e := range p.Events {
		events = append(events, toEventItem(e))
	}
	photos := p.Photos
	if photos == nil {
		photos = []string{}
	}

	it := pickupRequestItem{
		ID:          p.ID,
		UserID:      p.UserID,
		Category:    string(p.Category),
		IsSpecial:   p.IsSpecial,
		Description: p.Description,
		Quantity:    p.Quantity,
		Photos:      photos,
		Address: addressItem{
			Line1:   p.Address.Line1,
			Line2:   p.Address.Line2,
			City:    p.Address.City,
			Pincode: p.Address.Pincode,
			Lat:     p.Address.Lat,
			Lng:     p.Address.Lng,
		},
		ContactEmail:   p.ContactEmail,
		PreferredSlots: preferred,
		VendorID:       p.VendorID,
		Status:         string(p.Status),
		Events:         events,
		RewardPoints:   p.RewardPoints,
		Version:        p.Version,
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
	}
	if p.AssignedSlot != nil {
		slot := toSlotItem(*p.AssignedSlot)
		it.AssignedSlot = &slot
		it.SlotDate = slotDate(p.AssignedSlot.Start, loc)
		it.SlotStart = slot.Start
	}
	return it
}

func fromPickupRequestItem(it pickupRequestItem) entities.PickupRequest {
	preferred := make([]entities.SlotWindow, 0, len(it.PreferredSlots))
	for _, s := range it.PreferredSlots {
		preferred = append(preferred, fromSlotItem(s))
	}
	events := make([]entities.RequestEvent, 0, len(it.Events))
	for _, e := range it.Events {
		events = append(events, entities.RequestEvent{
			Type: entities.EventType(e.Type),
			At:   parseTime(e.At),
			By:   e.By,
			Data: e.Data,
		})
	}
	photos := it.Photos
	if photos == nil {
		photos = []string{}
	}

	p := entities.PickupRequest{
		ID:          it.ID,
		UserID:      it.UserID,
		Category:    entities.WasteCategory(it.Category),
		IsSpecial:   it.IsSpecial,
		Description: it.Description,
		Quantity:    it.Quantity,
		Photos:      photos,
		Address: entities.Address{
			Line1:   it.Address.Line1,
			Line2:   it.Address.Line2,
			City:    it.Address.City,
			Pincode: it.Address.Pincode,
			Lat:     it.Address.Lat,
			Lng:     it.Address.Lng,
		},
		ContactEmail:   it.ContactEmail,
		PreferredSlots: preferred,
		VendorID:       it.VendorID,
		Status:         entities.RequestStatus(it.Status),
		Events:         events,
		RewardPoints:   it.RewardPoints,
		Version:        it.Version,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
	if it.AssignedSlot != nil {
		slot := fromSlotItem(*it.AssignedSlot)
		p.AssignedSlot = &slot
	}
	return p
}
