package repository

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"portfolio-backend/internal/models"
)

// applyUpsert folds an update document into doc the way the server's upsert
// does: $setOnInsert applies only when the document is created.
func applyUpsert(doc bson.M, update bson.M, inserting bool) bson.M {
	if doc == nil {
		doc = bson.M{}
	}
	if inserting {
		for k, v := range update["$setOnInsert"].(bson.M) {
			doc[k] = v
		}
	}
	if set, ok := update["$set"].(bson.M); ok {
		for k, v := range set {
			doc[k] = v
		}
	}
	if inc, ok := update["$inc"].(bson.M); ok {
		for k, v := range inc {
			prev, _ := doc[k].(int64)
			switch n := v.(type) {
			case int:
				doc[k] = prev + int64(n)
			case int64:
				doc[k] = prev + n
			}
		}
	}
	if unset, ok := update["$unset"].(bson.M); ok {
		for k := range unset {
			delete(doc, k)
		}
	}
	return doc
}

func hitAt(at time.Time) *models.VisitorHit {
	return &models.VisitorHit{
		IP:      "1.2.3.4",
		Browser: "Chrome",
		Device:  "Desktop",
		OS:      "Linux",
		Path:    "/",
		At:      at,
	}
}

func TestHitUpdate_FirstHit(t *testing.T) {
	first := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	doc := applyUpsert(nil, hitUpdate(hitAt(first)), true)

	if doc["visitCount"] != int64(1) {
		t.Errorf("Expected visitCount 1, got %v", doc["visitCount"])
	}
	if doc["firstVisit"] != first {
		t.Errorf("Expected firstVisit %v, got %v", first, doc["firstVisit"])
	}
	if doc["lastVisit"] != first || doc["sessionStart"] != first {
		t.Errorf("Expected lastVisit and sessionStart %v, got %v / %v", first, doc["lastVisit"], doc["sessionStart"])
	}
	if doc["totalTimeSpent"] != int64(0) {
		t.Errorf("Expected totalTimeSpent 0, got %v", doc["totalTimeSpent"])
	}
	if doc["browser"] != "Chrome" || doc["device"] != "Desktop" || doc["os"] != "Linux" {
		t.Errorf("Expected user-agent fields on insert, got %v", doc)
	}
}

func TestHitUpdate_SecondHit(t *testing.T) {
	first := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)

	doc := applyUpsert(nil, hitUpdate(hitAt(first)), true)
	doc = applyUpsert(doc, hitUpdate(hitAt(second)), false)

	if doc["visitCount"] != int64(2) {
		t.Errorf("Expected visitCount 2, got %v", doc["visitCount"])
	}
	if doc["firstVisit"] != first {
		t.Errorf("Expected firstVisit to stay %v, got %v", first, doc["firstVisit"])
	}
	if doc["lastVisit"] != second {
		t.Errorf("Expected lastVisit %v, got %v", second, doc["lastVisit"])
	}
	if doc["sessionStart"] != second {
		t.Errorf("Expected a fresh session window at %v, got %v", second, doc["sessionStart"])
	}
}

func TestFlushUpdate_AccumulatesAndClosesWindow(t *testing.T) {
	first := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	doc := applyUpsert(nil, hitUpdate(hitAt(first)), true)
	doc = applyUpsert(doc, flushUpdate(45), false)

	if doc["totalTimeSpent"] != int64(45) {
		t.Errorf("Expected totalTimeSpent 45, got %v", doc["totalTimeSpent"])
	}
	if _, open := doc["sessionStart"]; open {
		t.Error("Expected sessionStart to be cleared by the flush")
	}
	if doc["visitCount"] != int64(1) {
		t.Errorf("Flush must not touch visitCount, got %v", doc["visitCount"])
	}
	if doc["lastVisit"] != first {
		t.Errorf("Flush must not touch lastVisit, got %v", doc["lastVisit"])
	}
}

func TestHitUpdate_OperatorPlacement(t *testing.T) {
	update := hitUpdate(hitAt(time.Now().UTC()))

	set := update["$set"].(bson.M)
	if _, ok := set["firstVisit"]; ok {
		t.Error("firstVisit must not be overwritten on repeat hits")
	}
	onInsert := update["$setOnInsert"].(bson.M)
	if _, ok := onInsert["lastVisit"]; ok {
		t.Error("lastVisit must advance on every hit, not only on insert")
	}
	if _, ok := set["lastVisit"]; !ok {
		t.Error("Expected lastVisit under $set")
	}
	if _, ok := onInsert["firstVisit"]; !ok {
		t.Error("Expected firstVisit under $setOnInsert")
	}
}
