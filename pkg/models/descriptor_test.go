package models

import (
	"errors"
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

func TestCapabilityDescriptor_Validate(t *testing.T) {
	tests := []struct {
		name    string
		desc    CapabilityDescriptor
		wantErr bool
	}{
		{
			name: "desktop",
			desc: CapabilityDescriptor{OS: "Windows", OSVersion: "10", BrowserName: "Chrome"},
		},
		{
			name: "device",
			desc: CapabilityDescriptor{Device: "Samsung Galaxy S22", RealMobile: true, BrowserName: "Android"},
		},
		{
			name:    "both os and device",
			desc:    CapabilityDescriptor{OS: "Windows", OSVersion: "10", Device: "Pixel", BrowserName: "Chrome"},
			wantErr: true,
		},
		{
			name:    "neither os nor device",
			desc:    CapabilityDescriptor{BrowserName: "Chrome"},
			wantErr: true,
		},
		{
			name:    "no browser",
			desc:    CapabilityDescriptor{OS: "Windows", OSVersion: "10"},
			wantErr: true,
		},
		{
			name:    "no os version",
			desc:    CapabilityDescriptor{OS: "Windows", BrowserName: "Chrome"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			err := tt.desc.Validate()
			if tt.wantErr {
				g.Expect(err).To(HaveOccurred())
			} else {
				g.Expect(err).ToNot(HaveOccurred())
			}
		})
	}
}

func TestCapabilityDescriptor_Title(t *testing.T) {
	g := NewWithT(t)

	desktop := CapabilityDescriptor{OS: "OS X", OSVersion: "Ventura", BrowserName: "Firefox"}
	g.Expect(desktop.Title()).To(Equal("Bstackdemo Journey on Firefox - OS X"))
	g.Expect(desktop.IsDevice()).To(BeFalse())

	device := CapabilityDescriptor{Device: "Samsung Galaxy S22"}
	g.Expect(device.Title()).To(Equal("Bstackdemo Journey on Samsung Galaxy S22 - Unknown OS"))
	g.Expect(device.IsDevice()).To(BeTrue())

	g.Expect(CapabilityDescriptor{}.Title()).To(Equal("Bstackdemo Journey on Unknown - Unknown OS"))
}

func TestScenarioResult(t *testing.T) {
	g := NewWithT(t)

	passed := NewPassedResult("title", "s1", "all good", time.Second)
	g.Expect(passed.Passed()).To(BeTrue())
	g.Expect(passed.Status()).To(Equal(StatusPassed))
	g.Expect(passed.Reason()).To(Equal("all good"))
	g.Expect(passed.Err()).ToNot(HaveOccurred())
	g.Expect(passed.SessionID()).To(Equal("s1"))
	g.Expect(passed.Duration()).To(Equal(time.Second))

	err := errors.New("boom")
	failed := NewFailedResult("title", "", err, time.Minute)
	g.Expect(failed.Passed()).To(BeFalse())
	g.Expect(failed.Status()).To(Equal(StatusFailed))
	g.Expect(failed.Reason()).To(Equal("boom"))
	g.Expect(failed.Err()).To(BeIdenticalTo(err))
	g.Expect(failed.Title()).To(Equal("title"))
}
