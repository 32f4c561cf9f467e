// Package testing provides test fixtures for shear.
package testing

import (
	"github.com/zoobzio/shear"
)

// Driver is a base fixture type.
type Driver struct {
	ID       string `xml:"id,attr"`
	Name     string `xml:"name"`
	FeedRate int    `xml:"feed-rate"`
}

// AsyncDriver embeds Driver and declares fields of its own.
// Label carries no xml tag, so it is encoded but never purged.
type AsyncDriver struct {
	Driver
	Timeout      int  `xml:"timeout"`
	Confirmation bool `xml:"confirmation,attr"`
	QueueDepth   int  `xml:"queue-depth"`
	Label        string
}

// ListedDriver reports its fields through shear.FieldLister.
// Only QueueDepth is marked, whatever its tags say.
type ListedDriver struct {
	Driver
	Timeout    int `xml:"timeout"`
	QueueDepth int `xml:"queue-depth"`
}

// PurgeFields implements shear.FieldLister.
func (ListedDriver) PurgeFields() []shear.FieldDescriptor {
	return []shear.FieldDescriptor{
		{Name: "Timeout", Marked: false},
		{Name: "QueueDepth", Marked: true},
	}
}

// SampleAsyncDriver returns a fully populated AsyncDriver.
func SampleAsyncDriver() *AsyncDriver {
	return &AsyncDriver{
		Driver: Driver{
			ID:       "d1",
			Name:     "grbl",
			FeedRate: 5000,
		},
		Timeout:      30,
		Confirmation: true,
		QueueDepth:   8,
		Label:        "bench",
	}
}

// SampleAsyncDriverXML is the compact XML encoding of SampleAsyncDriver.
const SampleAsyncDriverXML = `<AsyncDriver id="d1" confirmation="true">` +
	`<name>grbl</name><feed-rate>5000</feed-rate>` +
	`<timeout>30</timeout><queue-depth>8</queue-depth>` +
	`<Label>bench</Label></AsyncDriver>`

// SampleAsyncDriverPurgedXML is SampleAsyncDriverXML without AsyncDriver's marked fields.
const SampleAsyncDriverPurgedXML = `<AsyncDriver id="d1">` +
	`<name>grbl</name><feed-rate>5000</feed-rate>` +
	`<Label>bench</Label></AsyncDriver>`
