package profile

import "fmt"

// Sport identifiers as carried by the Sport and Session messages.
const (
	SportGeneric               uint8 = 0
	SportRunning               uint8 = 1
	SportCycling               uint8 = 2
	SportTransition            uint8 = 3
	SportFitnessEquipment      uint8 = 4
	SportSwimming              uint8 = 5
	SportBasketball            uint8 = 6
	SportSoccer                uint8 = 7
	SportTennis                uint8 = 8
	SportAmericanFootball      uint8 = 9
	SportTraining              uint8 = 10
	SportWalking               uint8 = 11
	SportCrossCountrySkiing    uint8 = 12
	SportAlpineSkiing          uint8 = 13
	SportSnowboarding          uint8 = 14
	SportRowing                uint8 = 15
	SportMountaineering        uint8 = 16
	SportHiking                uint8 = 17
	SportMultisport            uint8 = 18
	SportPaddling              uint8 = 19
	SportFlying                uint8 = 20
	SportEBiking               uint8 = 21
	SportMotorcycling          uint8 = 22
	SportBoating               uint8 = 23
	SportDriving               uint8 = 24
	SportGolf                  uint8 = 25
	SportHangGliding           uint8 = 26
	SportHorsebackRiding       uint8 = 27
	SportHunting               uint8 = 28
	SportFishing               uint8 = 29
	SportInlineSkating         uint8 = 30
	SportRockClimbing          uint8 = 31
	SportSailing               uint8 = 32
	SportIceSkating            uint8 = 33
	SportSkyDiving             uint8 = 34
	SportSnowshoeing           uint8 = 35
	SportSnowmobiling          uint8 = 36
	SportStandUpPaddleboarding uint8 = 37
	SportSurfing               uint8 = 38
	SportWakeboarding          uint8 = 39
	SportWaterSkiing           uint8 = 40
	SportKayaking              uint8 = 41
	SportRafting               uint8 = 42
	SportWindsurfing           uint8 = 43
	SportKitesurfing           uint8 = 44
	SportTactical              uint8 = 45
	SportJumpmaster            uint8 = 46
	SportBoxing                uint8 = 47
	SportFloorClimbing         uint8 = 48
	SportDiving                uint8 = 53
	SportAll                   uint8 = 254
)

var sportNames = map[uint8]string{
	SportGeneric:               "Generic",
	SportRunning:               "Running",
	SportCycling:               "Cycling",
	SportTransition:            "Transition",
	SportFitnessEquipment:      "Fitness Equipment",
	SportSwimming:              "Swimming",
	SportBasketball:            "Basketball",
	SportSoccer:                "Soccer",
	SportTennis:                "Tennis",
	SportAmericanFootball:      "American Football",
	SportTraining:              "Training",
	SportWalking:               "Walking",
	SportCrossCountrySkiing:    "Cross Country Skiing",
	SportAlpineSkiing:          "Alpine Skiing",
	SportSnowboarding:          "Snowboarding",
	SportRowing:                "Rowing",
	SportMountaineering:        "Mountaineering",
	SportHiking:                "Hiking",
	SportMultisport:            "Multisport",
	SportPaddling:              "Paddling",
	SportFlying:                "Flying",
	SportEBiking:               "E-Biking",
	SportMotorcycling:          "Motorcycling",
	SportBoating:               "Boating",
	SportDriving:               "Driving",
	SportGolf:                  "Golf",
	SportHangGliding:           "Hang Gliding",
	SportHorsebackRiding:       "Horseback Riding",
	SportHunting:               "Hunting",
	SportFishing:               "Fishing",
	SportInlineSkating:         "Inline Skating",
	SportRockClimbing:          "Rock Climbing",
	SportSailing:               "Sailing",
	SportIceSkating:            "Ice Skating",
	SportSkyDiving:             "Sky Diving",
	SportSnowshoeing:           "Snowshoeing",
	SportSnowmobiling:          "Snowmobiling",
	SportStandUpPaddleboarding: "Stand Up Paddleboarding",
	SportSurfing:               "Surfing",
	SportWakeboarding:          "Wakeboarding",
	SportWaterSkiing:           "Water Skiing",
	SportKayaking:              "Kayaking",
	SportRafting:               "Rafting",
	SportWindsurfing:           "Windsurfing",
	SportKitesurfing:           "Kitesurfing",
	SportTactical:              "Tactical",
	SportJumpmaster:            "Jumpmaster",
	SportBoxing:                "Boxing",
	SportFloorClimbing:         "Floor Climbing",
	SportDiving:                "Diving",
	SportAll:                   "All",
}

// SportName returns the human-readable name of a sport identifier.
func SportName(sport uint8) string {
	if name, ok := sportNames[sport]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", sport)
}
