package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ═══════════════════════════════════════════════════════════
// Feature groups
// ═══════════════════════════════════════════════════════════
// Every leaf below is a candidate filterable attribute; the query key map in
// the query package is derived from these field names.

type ScreenFeatures struct {
	ScreenSize               float64 `json:"screenSize" bson:"screenSize"`
	ScreenResulation         string  `json:"screenResulation" bson:"screenResulation"`
	ScreenResulationStandard string  `json:"screenResulationStandard" bson:"screenResulationStandard"`
	ScreenTechnology         string  `json:"screenTechnology" bson:"screenTechnology"`
	PixelDensity             int     `json:"pixelDensity" bson:"pixelDensity"`
	ScreenRefreshRate        int     `json:"screenRefreshRate" bson:"screenRefreshRate"`
	ScreenWeakness           string  `json:"screenWeakness,omitempty" bson:"screenWeakness,omitempty"`
	ScreenBodyRatio          float64 `json:"screenBodyRatio" bson:"screenBodyRatio"`
}

type BatteryFeatures struct {
	BatteryCapacity   int    `json:"batteryCapacity" bson:"batteryCapacity"`
	QuickCharge       bool   `json:"quickCharge" bson:"quickCharge"`
	QuickChargePower  int    `json:"quickChargePower" bson:"quickChargePower"`
	WirelessCharge    bool   `json:"wirelessCharge" bson:"wirelessCharge"`
	ChargeSocket      string `json:"chargeSocket" bson:"chargeSocket"`
	BatteryTechnology string `json:"batteryTechnology" bson:"batteryTechnology"`
}

type MainCamera struct {
	MainCameraPixel     int     `json:"mainCameraPixel" bson:"mainCameraPixel"`
	MainCameraDiaphragm float64 `json:"mainCameraDiaphragm" bson:"mainCameraDiaphragm"`
}

type FrontCamera struct {
	FrontCameraPixel     int     `json:"frontCameraPixel" bson:"frontCameraPixel"`
	FrontCameraDiaphragm float64 `json:"frontCameraDiaphragm" bson:"frontCameraDiaphragm"`
}

type CameraFeatures struct {
	CameraCount int         `json:"cameraCount" bson:"cameraCount"`
	MainCamera  MainCamera  `json:"mainCamera" bson:"mainCamera"`
	FrontCamera FrontCamera `json:"frontCamera" bson:"frontCamera"`
}

type BasicHardware struct {
	Chipset         string  `json:"chipset" bson:"chipset"`
	CPUFrequency    float64 `json:"cpuFrequency" bson:"cpuFrequency"`
	CPUCores        int     `json:"cpuCores" bson:"cpuCores"`
	CPUArchitecture string  `json:"cpuArchitecture" bson:"cpuArchitecture"`
	GPU             string  `json:"gpu" bson:"gpu"`
	RAM             int     `json:"ram" bson:"ram"`
	InternalStorage int     `json:"internalStorage" bson:"internalStorage"`
	ExternalStorage bool    `json:"externalStorage" bson:"externalStorage"`
	FiveG           bool    `json:"fiveG" bson:"fiveG"`
	NFC             bool    `json:"nfc" bson:"nfc"`
	OS              string  `json:"os" bson:"os"`
}

type DesignFeatures struct {
	Color      string     `json:"color" bson:"color" binding:"required"`
	Material   string     `json:"material" bson:"material" binding:"required"`
	Dimensions Dimensions `json:"dimensions" bson:"dimensions"`
	Weight     float64    `json:"weight" bson:"weight"`
}

// ═══════════════════════════════════════════════════════════
// Features document (1:1 with Product)
// ═══════════════════════════════════════════════════════════

type Features struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	NoticeID      string             `json:"noticeId" bson:"noticeId"`
	ProductID     primitive.ObjectID `json:"productId" bson:"productId"`
	ModelID       primitive.ObjectID `json:"modelId" bson:"modelId"`
	Screen        ScreenFeatures     `json:"screen" bson:"screen"`
	Battery       BatteryFeatures    `json:"battery" bson:"battery"`
	Camera        CameraFeatures     `json:"camera" bson:"camera"`
	BasicHardware BasicHardware      `json:"basicHardware" bson:"basicHardware"`
	Design        DesignFeatures     `json:"design" bson:"design"`
}

func (Features) Collection() string { return "features" }

type FeaturesRequest struct {
	Screen        ScreenFeatures  `json:"screen"`
	Battery       BatteryFeatures `json:"battery"`
	Camera        CameraFeatures  `json:"camera"`
	BasicHardware BasicHardware   `json:"basicHardware"`
	Design        DesignFeatures  `json:"design" binding:"required"`
}
