package model

const (
	EntityName = "game play"

	FieldID    = "id"
	EmailIndex = "email-index"
)

// GamePlay is one spin of the promotional wheel: who played, which offer they
// won, and whether the offer email went out.
type GamePlay struct {
	ID        string `dynamodbav:"id" json:"id"`
	Name      string `dynamodbav:"name" json:"name"`
	Email     string `dynamodbav:"email" json:"email"`
	Consent   bool   `dynamodbav:"consent" json:"consent"`
	Label     string `dynamodbav:"label" json:"label"`
	Code      string `dynamodbav:"code" json:"code"`
	Link      string `dynamodbav:"link" json:"link"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
	EmailSent bool   `dynamodbav:"emailSent" json:"emailSent"`
}

// Offer is one entry of the fixed wheel catalog.
type Offer struct {
	Code  string
	Label string
	Link  string
}

// Offers is the wheel catalog. Codes are stable; stored game plays reference
// them to replay a prior result.
var Offers = []Offer{
	{Code: "CANDLE5", Label: "Get $5 off our Ceramic Candles class", Link: "https://www.thepotteryloop.com/event-details/winter-candle-workshop-2025-12-06-13-30"},
	{Code: "CANDLE10", Label: "Get $10 off our Ceramic Candles class when you bring a friend", Link: "https://www.thepotteryloop.com/event-details/winter-candle-workshop-2025-12-06-13-30"},
	{Code: "WHEEL10", Label: "Get $10 off a Wheel Throwing class", Link: "https://www.thepotteryloop.com/service-page/intro-pottery-wheel-class"},
	{Code: "JAN30", Label: "Get $30 off any multi-week Wheel course in January", Link: "https://potterychicago.com/january-courses"},
	{Code: "HAND10", Label: "Get $10 off a Handbuilding Workshop", Link: "https://www.thepotteryloop.com/service-page/handbuilding-workshop"},
	{Code: "$20Mug", Label: "Get $20 off a mug glazing class", Link: "https://www.thepotteryloop.com/booking-calendar/the-perfect-mug?referral=service_details_widget&timezone=America%2FChicago&location="},
	{Code: "MYSTERY15", Label: "Mystery deal: Get 15% off any one pottery class of your choice", Link: "https://thepotteryloop.com"},
}

// OfferByCode resolves a stored code against the catalog.
func OfferByCode(code string) (Offer, bool) {
	for _, offer := range Offers {
		if offer.Code == code {
			return offer, true
		}
	}

	return Offer{}, false
}
