// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

// # Static Records

const (
	categoryMusicVideo = "music-video"
	locationChicago    = "CHICAGO"
)

// videoSeed is a Video whose File is resolved against the CDN base at build time.
type videoSeed struct {
	Video
	File string
}

var videoSeeds = []videoSeed{
	{File: "osamason3.mp4", Video: Video{
		ID: "osamason3", Title: "Osamason 3", Client: "Osamason", Artist: "Osamason",
		Song: "Habits", Tour: "Psykotic", Date: "October 25, 2025", Year: 2025,
		Location: locationChicago, Category: categoryMusicVideo, Featured: true,
	}},
	{File: "cartiLIKEWEEZY.mp4", Video: Video{
		ID: "carti-like-weezy", Title: "Carti Like Weezy", Client: "Playboi Carti", Artist: "Playboi Carti",
		Song: "Like Weezy", Tour: "Antagonist Tour", Date: "October 30, 2025", Year: 2025,
		Location: locationChicago, Category: categoryMusicVideo, Featured: true, Orientation: Orientation270,
	}},
	{File: "OsamasonPsykotic2.mp4", Video: Video{
		ID: "osamason-psykotic2", Title: "Osamason Psykotic 2", Client: "Osamason", Artist: "Osamason",
		Song: "It's a Party", Tour: "Psykotic Tour", Date: "October 25, 2025", Year: 2025,
		Location: locationChicago, Category: categoryMusicVideo,
	}},
	{File: "osamasonPSYKOTIC.mp4", Video: Video{
		ID: "osamason-psykotic", Title: "Osamason Psykotic", Client: "Osamason", Artist: "Osamason",
		Song: "What's Happening", Tour: "Psykotic Tour", Date: "October 25, 2025", Year: 2025,
		Location: locationChicago, Category: categoryMusicVideo, Featured: true,
	}},
	{File: "hellp1.mp4", Video: Video{
		ID: "hellp1", Title: "Hellp 1", Client: "Hellp", Artist: "The Hellp",
		Song: "Ether", Tour: "Vic Theatre", Date: "September 16, 2025", Year: 2025,
		Location: locationChicago, Category: categoryMusicVideo,
	}},
	{File: "2hollisLOLLA.mp4", Video: Video{
		ID: "2hollis-lolla", Title: "2hollis Lolla", Client: "2hollis", Artist: "2hollis",
		Song: "Trauma", Tour: "Lollapalooza", Date: "July 31st, 2025", Year: 2025,
		Location: locationChicago, Category: categoryMusicVideo, Featured: true, Orientation: Orientation270,
	}},
	{File: "carti1.mp4", Video: Video{
		ID: "carti1", Title: "Carti 1", Client: "Playboi Carti", Artist: "Playboi Carti",
		Song: "RATHER LIE", Tour: "After Hours Til Dawn Tour", Date: "May 30th, 2025", Year: 2025,
		Location: locationChicago, Category: categoryMusicVideo,
	}},
	{File: "charlixcxSWEAT.mp4", Video: Video{
		ID: "charlixcx-sweat", Title: "Charli XCX Sweat", Client: "Charli XCX", Artist: "Charli XCX",
		Song: "365", Tour: "Sweat Tour", Date: "September 30, 2024", Year: 2024,
		Location: locationChicago, Category: categoryMusicVideo, Featured: true,
	}},
	{File: "charlixcxGUESS.mp4", Video: Video{
		ID: "charlixcx-guess", Title: "Charli XCX Guess", Client: "Charli XCX", Artist: "Charli XCX",
		Song: "Guess", Tour: "Sweat Tour", Date: "September 30, 2024", Year: 2024,
		Location: locationChicago, Category: categoryMusicVideo, Featured: true,
	}},
}

// Clips without the artist/song/tour legend live on the lost files page.
var lostFileSeeds = []videoSeed{
	{File: "che.mp4", Video: Video{ID: "che", Title: "Che", Client: "Che", Year: 2024, Category: categoryMusicVideo}},
	{File: "hellpFULL.mp4", Video: Video{ID: "hellp-full", Title: "Hellp Full", Client: "Hellp", Year: 2024, Category: categoryMusicVideo}},
	{File: "hellp2.mp4", Video: Video{ID: "hellp2", Title: "Hellp 2", Client: "Hellp", Year: 2024, Category: categoryMusicVideo}},
	{File: "osamasonpreview.mp4", Video: Video{ID: "osamason-preview", Title: "Osamason Preview", Client: "Osamason", Year: 2024, Category: categoryMusicVideo}},
	{File: "osamasonoutro.mp4", Video: Video{ID: "osamason-outro", Title: "Osamason Outro", Client: "Osamason", Year: 2024, Category: categoryMusicVideo}},
	{File: "2hollisfull.mp4", Video: Video{ID: "2hollis-full", Title: "2hollis Full", Client: "2hollis", Year: 2024, Category: categoryMusicVideo}},
	{File: "osamasonfull.mp4", Video: Video{ID: "osamason-full", Title: "Osamason Full", Client: "Osamason", Year: 2024, Category: categoryMusicVideo}},
}

var photoRecords = []Photo{
	{ID: "photo-2", ImageURL: "/images/frostchildren-7.jpeg", Year: 2024, Client: "Frost Children"},
	{ID: "photo-3", ImageURL: "/images/thehellp-3.jpeg", Year: 2024, Client: "The Hellp"},
	{ID: "photo-4", ImageURL: "/images/2hollis-1.jpeg", Year: 2024, Client: "2hollis"},
	{ID: "photo-5", ImageURL: "/images/frostchildren-6.jpeg", Year: 2024, Client: "Frost Children"},
	{ID: "photo-7", ImageURL: "/images/yunglean-4.jpeg", Year: 2024, Client: "Yung Lean"},
	{ID: "photo-8", ImageURL: "/images/thehellp-4.jpeg", Year: 2024, Client: "The Hellp"},
	{ID: "photo-9", ImageURL: "/images/2hollis-2.jpeg", Year: 2024, Client: "2hollis"},
	{ID: "photo-10", ImageURL: "/images/frostchildren-5.jpeg", Year: 2024, Client: "Frost Children"},
	{ID: "photo-11", ImageURL: "/images/yunglean-3.jpeg", Year: 2024, Client: "Yung Lean"},
	{ID: "photo-12", ImageURL: "/images/frostchildren-4.jpeg", Year: 2024, Client: "Frost Children"},
	{ID: "photo-13", ImageURL: "/images/frostchildren-3.jpeg", Year: 2024, Client: "Frost Children"},
	{ID: "photo-14", ImageURL: "/images/yunglean-2.jpeg", Year: 2024, Client: "Yung Lean"},
	{ID: "photo-15", ImageURL: "/images/frostchildren-2.jpeg", Year: 2024, Client: "Frost Children"},
	{ID: "photo-16", ImageURL: "/images/thehellp-2.jpeg", Year: 2024, Client: "The Hellp"},
	{ID: "photo-17", ImageURL: "/images/osamason-3.jpeg", Year: 2024, Client: "Osamason"},
	{ID: "photo-18", ImageURL: "/images/osamason-2.jpeg", Year: 2024, Client: "Osamason"},
	{ID: "photo-19", ImageURL: "/images/osamason-1.jpeg", Year: 2024, Client: "Osamason"},
	{ID: "photo-20", ImageURL: "/images/frostchildren-1.jpeg", Year: 2024, Client: "Frost Children"},
	{ID: "photo-21", ImageURL: "/images/thehellp-1.jpeg", Year: 2024, Client: "The Hellp"},
	{ID: "photo-22", ImageURL: "/images/yunglean-1.jpeg", Year: 2024, Client: "Yung Lean"},
}
