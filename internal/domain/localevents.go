package domain

// LocalEvents returns the fixed local catalog. The slice is rebuilt on every
// call so callers can never mutate the authoritative set.
func LocalEvents() []Event {
	return []Event{
		{
			ID:                   "1",
			Title:                "City Marathon 2026",
			Description:          "A large-scale urban running event set against iconic city landmarks, bringing together athletes, fitness enthusiasts, and the local community.",
			Date:                 "2026-03-15",
			Location:             "New York, USA",
			ImageURL:             "https://images.unsplash.com/photo-1532444458054-01a7dd3e9fca?w=800",
			Category:             "Marathon",
			Status:               "upcoming",
			Price:                75,
			Currency:             "USD",
			Participants:         2847,
			MaxParticipants:      5000,
			Distance:             "42.2 km",
			Organizer:            "NYC Running Club",
			RegistrationDeadline: "2026-03-01",
		},
		{
			ID:                   "2",
			Title:                "Mountain Trail Challenge",
			Description:          "An exhilarating outdoor running event across rugged terrain, forest trails, and steep elevations for adventure seekers and endurance athletes.",
			Date:                 "2026-04-20",
			Location:             "Colorado, USA",
			ImageURL:             "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=800",
			Category:             "Trail Running",
			Status:               "upcoming",
			Price:                60,
			Currency:             "USD",
			Participants:         456,
			MaxParticipants:      800,
			Distance:             "25 km",
			Organizer:            "Mountain Sports Association",
			RegistrationDeadline: "2026-04-10",
		},
		{
			ID:                   "3",
			Title:                "Coastal Triathlon Series",
			Description:          "A multi-sport event along stunning coastlines combining open-water swimming, scenic cycling, and dynamic running courses for all levels.",
			Date:                 "2026-05-10",
			Location:             "San Diego, USA",
			ImageURL:             "https://images.unsplash.com/photo-1476480862126-209bfaa8edc8?w=800",
			Category:             "Triathlon",
			Status:               "upcoming",
			Price:                120,
			Currency:             "USD",
			Participants:         891,
			MaxParticipants:      1200,
			Distance:             "Olympic Distance",
			Organizer:            "Pacific Tri Club",
			RegistrationDeadline: "2026-04-25",
		},
		{
			ID:                   "4",
			Title:                "Urban Cycling Grand Prix",
			Description:          "A fast-paced city cycling race through closed urban circuits, drawing competitive riders and spectators from across the country.",
			Date:                 "2026-02-28",
			Location:             "London, UK",
			ImageURL:             "https://images.unsplash.com/photo-1541625602330-2277a4c46182?w=800",
			Category:             "Cycling",
			Status:               "ongoing",
			Price:                50,
			Currency:             "GBP",
			Participants:         1523,
			MaxParticipants:      2000,
			Distance:             "100 km",
			Organizer:            "London Cycling Federation",
			RegistrationDeadline: "2026-02-15",
		},
		{
			ID:                   "5",
			Title:                "Spring 10K Fun Run",
			Description:          "A friendly community 10K welcoming first-time racers and families, with live music and refreshments along the course.",
			Date:                 "2026-03-22",
			Location:             "Austin, Texas",
			ImageURL:             "https://images.unsplash.com/photo-1452626038306-9aae5e071dd3?w=800",
			Category:             "Running",
			Status:               "upcoming",
			Price:                35,
			Currency:             "USD",
			Participants:         3241,
			MaxParticipants:      4000,
			Distance:             "10 km",
			Organizer:            "Austin Runners Club",
			RegistrationDeadline: "2026-03-15",
		},
		{
			ID:                   "6",
			Title:                "Desert Ultra Marathon",
			Description:          "A grueling 50 km ultra across desert dunes and canyons, testing heat management, navigation, and raw endurance.",
			Date:                 "2026-01-10",
			Location:             "Dubai, UAE",
			ImageURL:             "https://images.unsplash.com/photo-1551632811-561732d1e306?w=800",
			Category:             "Marathon",
			Status:               "completed",
			Price:                150,
			Currency:             "USD",
			Participants:         234,
			MaxParticipants:      500,
			Distance:             "50 km",
			Organizer:            "Desert Endurance Sports",
			RegistrationDeadline: "2025-12-25",
		},
	}
}
