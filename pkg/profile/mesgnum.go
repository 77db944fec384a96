// Package profile carries the small slice of the activity-file profile the
// decoder's callers usually need: global message numbers, sport identifiers,
// and unit conversions. The wire decoder itself is profile-agnostic; this
// package gives names to the numbers it emits.
package profile

import "fmt"

// Global message numbers.
const (
	MesgNumFileID                      uint16 = 0
	MesgNumCapabilities                uint16 = 1
	MesgNumDeviceSettings              uint16 = 2
	MesgNumUserProfile                 uint16 = 3
	MesgNumHRMProfile                  uint16 = 4
	MesgNumSDMProfile                  uint16 = 5
	MesgNumBikeProfile                 uint16 = 6
	MesgNumZonesTarget                 uint16 = 7
	MesgNumHRZone                      uint16 = 8
	MesgNumPowerZone                   uint16 = 9
	MesgNumMetZone                     uint16 = 10
	MesgNumSport                       uint16 = 12
	MesgNumGoal                        uint16 = 15
	MesgNumSession                     uint16 = 18
	MesgNumLap                         uint16 = 19
	MesgNumRecord                      uint16 = 20
	MesgNumEvent                       uint16 = 21
	MesgNumDeviceInfo                  uint16 = 23
	MesgNumWorkout                     uint16 = 26
	MesgNumWorkoutStep                 uint16 = 27
	MesgNumSchedule                    uint16 = 28
	MesgNumWeightScale                 uint16 = 30
	MesgNumCourse                      uint16 = 31
	MesgNumCoursePoint                 uint16 = 32
	MesgNumTotals                      uint16 = 33
	MesgNumActivity                    uint16 = 34
	MesgNumSoftware                    uint16 = 35
	MesgNumFileCapabilities            uint16 = 37
	MesgNumMesgCapabilities            uint16 = 38
	MesgNumFieldCapabilities           uint16 = 39
	MesgNumFileCreator                 uint16 = 49
	MesgNumBloodPressure               uint16 = 51
	MesgNumSpeedZone                   uint16 = 53
	MesgNumMonitoring                  uint16 = 55
	MesgNumTrainingFile                uint16 = 72
	MesgNumHRV                         uint16 = 78
	MesgNumANTRx                       uint16 = 80
	MesgNumANTTx                       uint16 = 81
	MesgNumANTChannelID                uint16 = 82
	MesgNumLength                      uint16 = 101
	MesgNumMonitoringInfo              uint16 = 103
	MesgNumPad                         uint16 = 105
	MesgNumSlaveDevice                 uint16 = 106
	MesgNumConnectivity                uint16 = 127
	MesgNumWeatherConditions           uint16 = 128
	MesgNumWeatherAlert                uint16 = 129
	MesgNumCadenceZone                 uint16 = 131
	MesgNumHR                          uint16 = 132
	MesgNumSegmentLap                  uint16 = 142
	MesgNumMemoGlob                    uint16 = 145
	MesgNumSegmentID                   uint16 = 148
	MesgNumSegmentLeaderboardEntry     uint16 = 149
	MesgNumSegmentPoint                uint16 = 150
	MesgNumSegmentFile                 uint16 = 151
	MesgNumWorkoutSession              uint16 = 158
	MesgNumWatchfaceSettings           uint16 = 159
	MesgNumGPSMetadata                 uint16 = 160
	MesgNumCameraEvent                 uint16 = 161
	MesgNumTimestampCorrelation        uint16 = 162
	MesgNumGyroscopeData               uint16 = 164
	MesgNumAccelerometerData           uint16 = 165
	MesgNumThreeDSensorCalibration     uint16 = 167
	MesgNumVideoFrame                  uint16 = 169
	MesgNumOBDIIData                   uint16 = 174
	MesgNumNMEASentence                uint16 = 177
	MesgNumAviationAttitude            uint16 = 178
	MesgNumVideo                       uint16 = 184
	MesgNumVideoTitle                  uint16 = 185
	MesgNumVideoDescription            uint16 = 186
	MesgNumVideoClip                   uint16 = 187
	MesgNumOHRSettings                 uint16 = 188
	MesgNumEXDScreenConfiguration      uint16 = 200
	MesgNumEXDDataFieldConfiguration   uint16 = 201
	MesgNumEXDDataConceptConfiguration uint16 = 202
	MesgNumFieldDescription            uint16 = 206
	MesgNumDeveloperDataID             uint16 = 207
	MesgNumMagnetometerData            uint16 = 208
	MesgNumBarometerData               uint16 = 209
	MesgNumOneDSensorCalibration       uint16 = 210
	MesgNumSet                         uint16 = 225
	MesgNumStressLevel                 uint16 = 227
	MesgNumDiveSettings                uint16 = 258
	MesgNumDiveGas                     uint16 = 259
	MesgNumDiveAlarm                   uint16 = 262
	MesgNumExerciseTitle               uint16 = 264
	MesgNumDiveSummary                 uint16 = 268
	MesgNumJump                        uint16 = 285
	MesgNumClimbPro                    uint16 = 317
)

var mesgNames = map[uint16]string{
	MesgNumFileID:                      "File ID",
	MesgNumCapabilities:                "Capabilities",
	MesgNumDeviceSettings:              "Device Settings",
	MesgNumUserProfile:                 "User Profile",
	MesgNumHRMProfile:                  "HRM Profile",
	MesgNumSDMProfile:                  "SDM Profile",
	MesgNumBikeProfile:                 "Bike Profile",
	MesgNumZonesTarget:                 "Zones Target",
	MesgNumHRZone:                      "HR Zone",
	MesgNumPowerZone:                   "Power Zone",
	MesgNumMetZone:                     "MET Zone",
	MesgNumSport:                       "Sport",
	MesgNumGoal:                        "Goal",
	MesgNumSession:                     "Session",
	MesgNumLap:                         "Lap",
	MesgNumRecord:                      "Record",
	MesgNumEvent:                       "Event",
	MesgNumDeviceInfo:                  "Device Info",
	MesgNumWorkout:                     "Workout",
	MesgNumWorkoutStep:                 "Workout Step",
	MesgNumSchedule:                    "Schedule",
	MesgNumWeightScale:                 "Weight Scale",
	MesgNumCourse:                      "Course",
	MesgNumCoursePoint:                 "Course Point",
	MesgNumTotals:                      "Totals",
	MesgNumActivity:                    "Activity",
	MesgNumSoftware:                    "Software",
	MesgNumFileCapabilities:            "File Capabilities",
	MesgNumMesgCapabilities:            "Message Capabilities",
	MesgNumFieldCapabilities:           "Field Capabilities",
	MesgNumFileCreator:                 "File Creator",
	MesgNumBloodPressure:               "Blood Pressure",
	MesgNumSpeedZone:                   "Speed Zone",
	MesgNumMonitoring:                  "Monitoring",
	MesgNumTrainingFile:                "Training File",
	MesgNumHRV:                         "HRV",
	MesgNumANTRx:                       "ANT RX",
	MesgNumANTTx:                       "ANT TX",
	MesgNumANTChannelID:                "ANT Channel ID",
	MesgNumLength:                      "Length",
	MesgNumMonitoringInfo:              "Monitoring Info",
	MesgNumPad:                         "Pad",
	MesgNumSlaveDevice:                 "Slave Device",
	MesgNumConnectivity:                "Connectivity",
	MesgNumWeatherConditions:           "Weather",
	MesgNumWeatherAlert:                "Weather Alert",
	MesgNumCadenceZone:                 "Cadence Zone",
	MesgNumHR:                          "HR",
	MesgNumSegmentLap:                  "Segment Lap",
	MesgNumMemoGlob:                    "Memo Glob",
	MesgNumSegmentID:                   "Segment ID",
	MesgNumSegmentLeaderboardEntry:     "Segment Leaderboard Entry",
	MesgNumSegmentPoint:                "Segment Point",
	MesgNumSegmentFile:                 "Segment File",
	MesgNumWorkoutSession:              "Workout Session",
	MesgNumWatchfaceSettings:           "Watch Face Settings",
	MesgNumGPSMetadata:                 "GPS Metadata",
	MesgNumCameraEvent:                 "Camera Event",
	MesgNumTimestampCorrelation:        "Timestamp Correlation",
	MesgNumGyroscopeData:               "Gyroscope Data",
	MesgNumAccelerometerData:           "Accelerometer Data",
	MesgNumThreeDSensorCalibration:     "3D Sensor Calibration",
	MesgNumVideoFrame:                  "Video Frame",
	MesgNumOBDIIData:                   "OBDII Data",
	MesgNumNMEASentence:                "NMEA Sentence",
	MesgNumAviationAttitude:            "Aviation Attitude",
	MesgNumVideo:                       "Video",
	MesgNumVideoTitle:                  "Video Title",
	MesgNumVideoDescription:            "Video Description",
	MesgNumVideoClip:                   "Video Clip",
	MesgNumOHRSettings:                 "OHR Settings",
	MesgNumEXDScreenConfiguration:      "EXD Screen Configuration",
	MesgNumEXDDataFieldConfiguration:   "EXD Data Field Configuration",
	MesgNumEXDDataConceptConfiguration: "EXD Data Concept Configuration",
	MesgNumFieldDescription:            "Field Description",
	MesgNumDeveloperDataID:             "Developer Data ID",
	MesgNumMagnetometerData:            "Magnetometer Data",
	MesgNumBarometerData:               "Barometer Data",
	MesgNumOneDSensorCalibration:       "1D Sensor Calibration",
	MesgNumSet:                         "Set",
	MesgNumStressLevel:                 "Stress Level",
	MesgNumDiveSettings:                "Dive Settings",
	MesgNumDiveGas:                     "Dive Gas",
	MesgNumDiveAlarm:                   "Dive Alarm",
	MesgNumExerciseTitle:               "Exercise Title",
	MesgNumDiveSummary:                 "Dive Summary",
	MesgNumJump:                        "Jump",
	MesgNumClimbPro:                    "Climb Pro",
}

// MesgName returns the human-readable name of a global message number, or a
// placeholder naming the number when the profile does not cover it. Device
// vendors mint message numbers above 0xFF00 freely, so unknown numbers are
// expected in real files.
func MesgName(mesgNum uint16) string {
	if name, ok := mesgNames[mesgNum]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", mesgNum)
}
