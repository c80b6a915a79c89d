package board

// standardSquares is the US-edition layout. Rent schedules are
// [base, 1h, 2h, 3h, 4h, hotel]; the monopoly-doubles-base-rent rule (an
// unimproved street's rent doubles when its owner holds the full color
// group) is applied by the valuator, not baked into this table.
var standardSquares = [NumSquares]Square{
	{Index: 0, Name: "Go", Kind: KindGo, Group: NoGroup},
	{Index: 1, Name: "Mediterranean Avenue", Kind: KindStreet, Group: Brown, Price: 60, HousePrice: 50, RentSchedule: [6]int{2, 10, 30, 90, 160, 250}},
	{Index: 2, Name: "Community Chest", Kind: KindChest, Group: NoGroup},
	{Index: 3, Name: "Baltic Avenue", Kind: KindStreet, Group: Brown, Price: 60, HousePrice: 50, RentSchedule: [6]int{4, 20, 60, 180, 320, 450}},
	{Index: 4, Name: "Income Tax", Kind: KindTax, Group: NoGroup, TaxAmount: 200},
	{Index: 5, Name: "Reading Railroad", Kind: KindRailroad, Group: RailroadGroup, Price: 200},
	{Index: 6, Name: "Oriental Avenue", Kind: KindStreet, Group: LightBlue, Price: 100, HousePrice: 50, RentSchedule: [6]int{6, 30, 90, 270, 400, 550}},
	{Index: 7, Name: "Chance", Kind: KindChance, Group: NoGroup},
	{Index: 8, Name: "Vermont Avenue", Kind: KindStreet, Group: LightBlue, Price: 100, HousePrice: 50, RentSchedule: [6]int{6, 30, 90, 270, 400, 550}},
	{Index: 9, Name: "Connecticut Avenue", Kind: KindStreet, Group: LightBlue, Price: 120, HousePrice: 50, RentSchedule: [6]int{8, 40, 100, 300, 450, 600}},
	{Index: 10, Name: "Jail", Kind: KindJail, Group: NoGroup},
	{Index: 11, Name: "St. Charles Place", Kind: KindStreet, Group: Pink, Price: 140, HousePrice: 100, RentSchedule: [6]int{10, 50, 150, 450, 625, 750}},
	{Index: 12, Name: "Electric Company", Kind: KindUtility, Group: UtilityGroup, Price: 150},
	{Index: 13, Name: "States Avenue", Kind: KindStreet, Group: Pink, Price: 140, HousePrice: 100, RentSchedule: [6]int{10, 50, 150, 450, 625, 750}},
	{Index: 14, Name: "Virginia Avenue", Kind: KindStreet, Group: Pink, Price: 160, HousePrice: 100, RentSchedule: [6]int{12, 60, 180, 500, 700, 900}},
	{Index: 15, Name: "Pennsylvania Railroad", Kind: KindRailroad, Group: RailroadGroup, Price: 200},
	{Index: 16, Name: "St. James Place", Kind: KindStreet, Group: Orange, Price: 180, HousePrice: 100, RentSchedule: [6]int{14, 70, 200, 550, 750, 950}},
	{Index: 17, Name: "Community Chest", Kind: KindChest, Group: NoGroup},
	{Index: 18, Name: "Tennessee Avenue", Kind: KindStreet, Group: Orange, Price: 180, HousePrice: 100, RentSchedule: [6]int{14, 70, 200, 550, 750, 950}},
	{Index: 19, Name: "New York Avenue", Kind: KindStreet, Group: Orange, Price: 200, HousePrice: 100, RentSchedule: [6]int{16, 80, 220, 600, 800, 1000}},
	{Index: 20, Name: "Free Parking", Kind: KindFreeParking, Group: NoGroup},
	{Index: 21, Name: "Kentucky Avenue", Kind: KindStreet, Group: Red, Price: 220, HousePrice: 150, RentSchedule: [6]int{18, 90, 250, 700, 875, 1050}},
	{Index: 22, Name: "Chance", Kind: KindChance, Group: NoGroup},
	{Index: 23, Name: "Indiana Avenue", Kind: KindStreet, Group: Red, Price: 220, HousePrice: 150, RentSchedule: [6]int{18, 90, 250, 700, 875, 1050}},
	{Index: 24, Name: "Illinois Avenue", Kind: KindStreet, Group: Red, Price: 240, HousePrice: 150, RentSchedule: [6]int{20, 100, 300, 750, 925, 1100}},
	{Index: 25, Name: "B. & O. Railroad", Kind: KindRailroad, Group: RailroadGroup, Price: 200},
	{Index: 26, Name: "Atlantic Avenue", Kind: KindStreet, Group: Yellow, Price: 260, HousePrice: 150, RentSchedule: [6]int{22, 110, 330, 800, 975, 1150}},
	{Index: 27, Name: "Ventnor Avenue", Kind: KindStreet, Group: Yellow, Price: 260, HousePrice: 150, RentSchedule: [6]int{22, 110, 330, 800, 975, 1150}},
	{Index: 28, Name: "Water Works", Kind: KindUtility, Group: UtilityGroup, Price: 150},
	{Index: 29, Name: "Marvin Gardens", Kind: KindStreet, Group: Yellow, Price: 280, HousePrice: 150, RentSchedule: [6]int{24, 120, 360, 850, 1025, 1200}},
	{Index: 30, Name: "Go To Jail", Kind: KindGoToJail, Group: NoGroup},
	{Index: 31, Name: "Pacific Avenue", Kind: KindStreet, Group: Green, Price: 300, HousePrice: 200, RentSchedule: [6]int{26, 130, 390, 900, 1100, 1275}},
	{Index: 32, Name: "North Carolina Avenue", Kind: KindStreet, Group: Green, Price: 300, HousePrice: 200, RentSchedule: [6]int{26, 130, 390, 900, 1100, 1275}},
	{Index: 33, Name: "Community Chest", Kind: KindChest, Group: NoGroup},
	{Index: 34, Name: "Pennsylvania Avenue", Kind: KindStreet, Group: Green, Price: 320, HousePrice: 200, RentSchedule: [6]int{28, 150, 450, 1000, 1200, 1400}},
	{Index: 35, Name: "Short Line", Kind: KindRailroad, Group: RailroadGroup, Price: 200},
	{Index: 36, Name: "Chance", Kind: KindChance, Group: NoGroup},
	{Index: 37, Name: "Park Place", Kind: KindStreet, Group: DarkBlue, Price: 350, HousePrice: 200, RentSchedule: [6]int{35, 175, 500, 1100, 1300, 1500}},
	{Index: 38, Name: "Luxury Tax", Kind: KindTax, Group: NoGroup, TaxAmount: LuxuryTaxAmount},
	{Index: 39, Name: "Boardwalk", Kind: KindStreet, Group: DarkBlue, Price: 400, HousePrice: 200, RentSchedule: [6]int{50, 200, 600, 1400, 1700, 2000}},
}
