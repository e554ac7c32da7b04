package profile

// Catalog dimensions in mm, published areas in mm². Sources: rolled-section
// tables to EN 10365 (HEA/HEB/IPE/UPN/L) and EN 10210-2 (hot-finished CHS
// and SHS). The UPN records carry the mean flange thickness of the tapered
// flange.

var catalog = buildCatalog(
	// HEA
	Dimensions{Name: "HEA100", Family: FamilyHEA, H: 96, B: 100, Tw: 5, Tf: 8, R: 12, CatalogArea: 2120},
	Dimensions{Name: "HEA140", Family: FamilyHEA, H: 133, B: 140, Tw: 5.5, Tf: 8.5, R: 12, CatalogArea: 3140},
	Dimensions{Name: "HEA200", Family: FamilyHEA, H: 190, B: 200, Tw: 6.5, Tf: 10, R: 18, CatalogArea: 5380},
	Dimensions{Name: "HEA240", Family: FamilyHEA, H: 230, B: 240, Tw: 7.5, Tf: 12, R: 21, CatalogArea: 7680},
	Dimensions{Name: "HEA300", Family: FamilyHEA, H: 290, B: 300, Tw: 8.5, Tf: 14, R: 27, CatalogArea: 11250},
	Dimensions{Name: "HEA400", Family: FamilyHEA, H: 390, B: 300, Tw: 11, Tf: 19, R: 27, CatalogArea: 15900},
	Dimensions{Name: "HEA500", Family: FamilyHEA, H: 490, B: 300, Tw: 12, Tf: 23, R: 27, CatalogArea: 19750},

	// HEB
	Dimensions{Name: "HEB100", Family: FamilyHEB, H: 100, B: 100, Tw: 6, Tf: 10, R: 12, CatalogArea: 2600},
	Dimensions{Name: "HEB140", Family: FamilyHEB, H: 140, B: 140, Tw: 7, Tf: 12, R: 12, CatalogArea: 4300},
	Dimensions{Name: "HEB200", Family: FamilyHEB, H: 200, B: 200, Tw: 9, Tf: 15, R: 18, CatalogArea: 7810},
	Dimensions{Name: "HEB240", Family: FamilyHEB, H: 240, B: 240, Tw: 10, Tf: 17, R: 21, CatalogArea: 10600},
	Dimensions{Name: "HEB300", Family: FamilyHEB, H: 300, B: 300, Tw: 11, Tf: 19, R: 27, CatalogArea: 14910},
	Dimensions{Name: "HEB400", Family: FamilyHEB, H: 400, B: 300, Tw: 13.5, Tf: 24, R: 27, CatalogArea: 19780},

	// IPE
	Dimensions{Name: "IPE80", Family: FamilyIPE, H: 80, B: 46, Tw: 3.8, Tf: 5.2, R: 5, CatalogArea: 764},
	Dimensions{Name: "IPE100", Family: FamilyIPE, H: 100, B: 55, Tw: 4.1, Tf: 5.7, R: 7, CatalogArea: 1030},
	Dimensions{Name: "IPE160", Family: FamilyIPE, H: 160, B: 82, Tw: 5, Tf: 7.4, R: 9, CatalogArea: 2010},
	Dimensions{Name: "IPE200", Family: FamilyIPE, H: 200, B: 100, Tw: 5.6, Tf: 8.5, R: 12, CatalogArea: 2850},
	Dimensions{Name: "IPE240", Family: FamilyIPE, H: 240, B: 120, Tw: 6.2, Tf: 9.8, R: 15, CatalogArea: 3910},
	Dimensions{Name: "IPE300", Family: FamilyIPE, H: 300, B: 150, Tw: 7.1, Tf: 10.7, R: 15, CatalogArea: 5380},
	Dimensions{Name: "IPE400", Family: FamilyIPE, H: 400, B: 180, Tw: 8.6, Tf: 13.5, R: 21, CatalogArea: 8450},
	Dimensions{Name: "IPE500", Family: FamilyIPE, H: 500, B: 200, Tw: 10.2, Tf: 16, R: 21, CatalogArea: 11550},

	// UPN (mean flange thickness, parallel-flange idealization)
	Dimensions{Name: "UPN100", Family: FamilyUPN, H: 100, B: 50, Tw: 6, Tf: 8.5, R: 8.5, CatalogArea: 1350},
	Dimensions{Name: "UPN160", Family: FamilyUPN, H: 160, B: 65, Tw: 7.5, Tf: 10.5, R: 10.5, CatalogArea: 2400},
	Dimensions{Name: "UPN200", Family: FamilyUPN, H: 200, B: 75, Tw: 8.5, Tf: 11.5, R: 11.5, CatalogArea: 3220},
	Dimensions{Name: "UPN300", Family: FamilyUPN, H: 300, B: 100, Tw: 10, Tf: 16, R: 16, CatalogArea: 5880},

	// CHS, hot finished
	Dimensions{Name: "CHS48.3X3.2", Family: FamilyCHS, D: 48.3, T: 3.2, CatalogArea: 453},
	Dimensions{Name: "CHS88.9X4", Family: FamilyCHS, D: 88.9, T: 4, CatalogArea: 1070},
	Dimensions{Name: "CHS114.3X5", Family: FamilyCHS, D: 114.3, T: 5, CatalogArea: 1720},
	Dimensions{Name: "CHS168.3X6.3", Family: FamilyCHS, D: 168.3, T: 6.3, CatalogArea: 3210},
	Dimensions{Name: "CHS219.1X8", Family: FamilyCHS, D: 219.1, T: 8, CatalogArea: 5310},

	// SHS, hot finished (ro = 1.5t, ri = 1.0t)
	Dimensions{Name: "SHS40X40X4", Family: FamilySHS, H: 40, B: 40, T: 4, CatalogArea: 559},
	Dimensions{Name: "SHS60X60X5", Family: FamilySHS, H: 60, B: 60, T: 5, CatalogArea: 1070},
	Dimensions{Name: "SHS100X100X5", Family: FamilySHS, H: 100, B: 100, T: 5, CatalogArea: 1870},
	Dimensions{Name: "SHS150X150X8", Family: FamilySHS, H: 150, B: 150, T: 8, CatalogArea: 4480},

	// Equal-leg angles (toe radii neglected in the generated shape)
	Dimensions{Name: "L60X60X6", Family: FamilyL, H: 60, B: 60, T: 6, R: 8, CatalogArea: 691},
	Dimensions{Name: "L100X100X10", Family: FamilyL, H: 100, B: 100, T: 10, R: 12, CatalogArea: 1920},
	Dimensions{Name: "L150X150X15", Family: FamilyL, H: 150, B: 150, T: 15, R: 16, CatalogArea: 4300},
)

func buildCatalog(entries ...Dimensions) map[string]Dimensions {
	m := make(map[string]Dimensions, len(entries))
	for _, d := range entries {
		m[normalize(d.Name)] = d
	}
	return m
}
