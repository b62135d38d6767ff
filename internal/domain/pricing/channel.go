package pricing

// Channel is the sales channel an order comes in through.
type Channel string

const (
	ChannelEndConsumer Channel = "end_consumer"
	ChannelDistributor Channel = "distributor"
	ChannelBulk        Channel = "bulk"
	ChannelCustom      Channel = "custom"
)

// Valid reports whether c is one of the known sales channels.
func (c Channel) Valid() bool {
	switch c {
	case ChannelEndConsumer, ChannelDistributor, ChannelBulk, ChannelCustom:
		return true
	}
	return false
}

// PriceChannelKey identifies an active price list row for a product.
// End-consumer orders resolve to either the delivery or the plant-pickup
// list depending on the delivery decision; every other channel maps to a
// key of the same name (pre-negotiated price lists).
type PriceChannelKey string

const (
	PriceKeyEndConsumerDelivery PriceChannelKey = "end_consumer_delivery"
	PriceKeyPlantPickup         PriceChannelKey = "plant_pickup"
	PriceKeyDistributor         PriceChannelKey = "distributor"
	PriceKeyBulk                PriceChannelKey = "bulk"
	PriceKeyCustom              PriceChannelKey = "custom"
)

// Valid reports whether k is a known price list key.
func (k PriceChannelKey) Valid() bool {
	switch k {
	case PriceKeyEndConsumerDelivery, PriceKeyPlantPickup, PriceKeyDistributor, PriceKeyBulk, PriceKeyCustom:
		return true
	}
	return false
}

// DeliveryType is how the buyer receives the goods.
type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

// Valid reports whether d is a known delivery type.
func (d DeliveryType) Valid() bool {
	return d == DeliveryTypeDelivery || d == DeliveryTypePickup
}

// PriceKeyFor resolves the price list key for a channel given the effective
// delivery type after eligibility resolution.
func PriceKeyFor(c Channel, effective DeliveryType) PriceChannelKey {
	if c == ChannelEndConsumer {
		if effective == DeliveryTypeDelivery {
			return PriceKeyEndConsumerDelivery
		}
		return PriceKeyPlantPickup
	}
	return PriceChannelKey(c)
}
