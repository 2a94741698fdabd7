package cloud

// gcpZoneData is the allowlist of zones validated for accelerator
// availability on GKE, keyed by accelerator class and model.
// Last updated: Feb 2026.
var gcpZoneData = ZoneTable{
	ZoneClassTPU: {
		"v6e": {
			"us-central1-b":        "US Central",
			"us-east1-d":           "US East",
			"us-east5-a":           "US East (Columbus)",
			"us-east5-b":           "US East (Columbus)",
			"us-south1-a":          "US South (Dallas)",
			"us-south1-b":          "US South (Dallas)",
			"europe-west4-a":       "Europe (Netherlands)",
			"asia-northeast1-b":    "Asia (Tokyo)",
			"southamerica-west1-a": "South America (Santiago)",
		},
		"v5e": {
			"europe-west4-b": "Europe (Netherlands)",
			"us-central1-a":  "US Central",
			"us-south1-a":    "US South (Dallas)",
			"us-west1-c":     "US West (Oregon)",
			"us-west4-a":     "US West (Las Vegas)",
		},
		"v5p": {
			"europe-west4-b": "Europe (Netherlands)",
			"us-central1-a":  "US Central",
			"us-east5-a":     "US East (Columbus)",
		},
	},
	ZoneClassGPU: {
		"t4": {
			"us-central1-a":     "US Central",
			"us-central1-b":     "US Central",
			"us-central1-c":     "US Central",
			"us-central1-f":     "US Central",
			"us-east1-b":        "US East",
			"us-east1-c":        "US East",
			"us-east1-d":        "US East",
			"us-east4-a":        "US East (Virginia)",
			"us-east4-b":        "US East (Virginia)",
			"us-east4-c":        "US East (Virginia)",
			"us-west1-a":        "US West (Oregon)",
			"us-west1-b":        "US West (Oregon)",
			"us-west2-b":        "US West (Los Angeles)",
			"us-west2-c":        "US West (Los Angeles)",
			"us-west4-a":        "US West (Las Vegas)",
			"us-west4-b":        "US West (Las Vegas)",
			"europe-west1-b":    "Europe (Belgium)",
			"europe-west1-c":    "Europe (Belgium)",
			"europe-west4-a":    "Europe (Netherlands)",
			"europe-west4-b":    "Europe (Netherlands)",
			"asia-east1-a":      "Asia (Taiwan)",
			"asia-southeast1-a": "Asia (Singapore)",
		},
		"a100": {
			"us-central1-a":     "US Central",
			"us-central1-b":     "US Central",
			"us-central1-c":     "US Central",
			"us-east1-c":        "US East",
			"us-east4-a":        "US East (Virginia)",
			"us-east4-b":        "US East (Virginia)",
			"us-west1-a":        "US West (Oregon)",
			"us-west1-b":        "US West (Oregon)",
			"europe-west4-a":    "Europe (Netherlands)",
			"europe-west4-b":    "Europe (Netherlands)",
			"asia-southeast1-c": "Asia (Singapore)",
			"asia-northeast1-a": "Asia (Tokyo)",
			"asia-northeast1-c": "Asia (Tokyo)",
		},
		"l4": {
			"us-central1-a":     "US Central",
			"us-central1-b":     "US Central",
			"us-central1-c":     "US Central",
			"us-east1-c":        "US East",
			"us-east4-a":        "US East (Virginia)",
			"us-east4-b":        "US East (Virginia)",
			"us-west1-a":        "US West (Oregon)",
			"us-west1-b":        "US West (Oregon)",
			"us-west4-b":        "US West (Las Vegas)",
			"europe-west1-b":    "Europe (Belgium)",
			"europe-west4-a":    "Europe (Netherlands)",
			"asia-southeast1-b": "Asia (Singapore)",
			"asia-northeast1-b": "Asia (Tokyo)",
		},
		"h100": {
			"us-central1-a":     "US Central",
			"us-central1-b":     "US Central",
			"us-east4-a":        "US East (Virginia)",
			"us-east4-c":        "US East (Virginia)",
			"us-west1-a":        "US West (Oregon)",
			"us-west4-b":        "US West (Las Vegas)",
			"europe-west4-a":    "Europe (Netherlands)",
			"asia-southeast1-c": "Asia (Singapore)",
		},
	},
}
