package dataset

import (
	"time"

	"github.com/silkroad-freight/freightboard/internal/analytics"
	"github.com/silkroad-freight/freightboard/internal/customer"
	"github.com/silkroad-freight/freightboard/internal/timeline"
	"github.com/silkroad-freight/freightboard/internal/waybill"
)

// Xinjiang desks record local wall-clock time.
var seedZone = time.FixedZone("CST", 8*3600)

func clock(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", s, seedZone)
	if err != nil {
		panic(err)
	}
	return t
}

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, seedZone)
	if err != nil {
		panic(err)
	}
	return t
}

func stamp(s string) *time.Time {
	t := clock(s)
	return &t
}

// Seed returns the demonstration snapshot served by the memory source.
func Seed() analytics.Snapshot {
	return analytics.Snapshot{
		Stats:           seedStats(),
		Waybills:        seedWaybills(),
		Customers:       seedCustomers(),
		Countries:       seedCountries(),
		Routes:          seedRoutes(),
		NodeEfficiency:  seedNodeEfficiency(),
		Exceptions:      seedExceptions(),
		ExceptionOrders: seedExceptionOrders(),
		Operators:       seedOperators(),
		Salesmen:        seedSalesmen(),
		Trend:           seedTrend(),
		Risk:            analytics.FinancialRisk{ExceptionLoss: 2.5, UnsettledAmount: 45, OverdueAmount: 12},
		HighRiskOrders:  seedHighRiskOrders(),
	}
}

func seedStats() analytics.DashboardStats {
	return analytics.DashboardStats{
		TodayOrders:       120,
		TodayOrdersChange: 12,
		InTransitVehicles: 86,
		InTransitChange:   5,
		TotalRevenue:      128.5,
		RevenueChange:     8,
		ExceptionOrders:   5,
		ExceptionChange:   -2,
		MonthOrders:       3256,
		YearOrders:        38950,
		ExitedVehicles:    234,
		GrossProfit:       32.1,
		GrossMargin:       25,
	}
}

func seedCountries() []analytics.CountryData {
	return []analytics.CountryData{
		{Name: "Kazakhstan", NameCN: "哈萨克斯坦", Code: "KZ", InTransit: 35, Exited: 128, Exception: 3, Lat: 48.0196, Lng: 66.9237},
		{Name: "Uzbekistan", NameCN: "乌兹别克斯坦", Code: "UZ", InTransit: 22, Exited: 89, Exception: 1, Lat: 41.3775, Lng: 64.5853},
		{Name: "Kyrgyzstan", NameCN: "吉尔吉斯斯坦", Code: "KG", InTransit: 15, Exited: 67, Exception: 0, Lat: 41.2044, Lng: 74.7661},
		{Name: "Tajikistan", NameCN: "塔吉克斯坦", Code: "TJ", InTransit: 8, Exited: 45, Exception: 1, Lat: 38.8610, Lng: 71.2761},
		{Name: "Turkmenistan", NameCN: "土库曼斯坦", Code: "TM", InTransit: 6, Exited: 32, Exception: 0, Lat: 38.9697, Lng: 59.5563},
	}
}

func seedRoutes() []analytics.RouteData {
	return []analytics.RouteData{
		{ID: "1", From: "新疆阿拉山口", To: "哈萨克斯坦阿拉木图", FromLat: 45.1675, FromLng: 82.5699, ToLat: 43.2220, ToLng: 76.8512, Efficiency: 85, AvgTime: 36, ExceptionRate: 3.2, OrderCount: 456},
		{ID: "2", From: "新疆霍尔果斯", To: "乌兹别克斯坦塔什干", FromLat: 44.2014, FromLng: 80.4105, ToLat: 41.2995, ToLng: 69.2401, Efficiency: 78, AvgTime: 48, ExceptionRate: 5.8, OrderCount: 328},
		{ID: "3", From: "新疆伊尔克什坦", To: "吉尔吉斯斯坦比什凯克", FromLat: 39.7159, FromLng: 73.9197, ToLat: 42.8746, ToLng: 74.5698, Efficiency: 92, AvgTime: 28, ExceptionRate: 1.5, OrderCount: 267},
		{ID: "4", From: "新疆卡拉苏", To: "塔吉克斯坦杜尚别", FromLat: 38.1771, FromLng: 74.8636, ToLat: 38.5598, ToLng: 68.7870, Efficiency: 88, AvgTime: 32, ExceptionRate: 2.1, OrderCount: 189},
		{ID: "5", From: "新疆巴克图", To: "哈萨克斯坦阿斯塔纳", FromLat: 46.6584, FromLng: 82.9172, ToLat: 51.1605, ToLng: 71.4704, Efficiency: 82, AvgTime: 42, ExceptionRate: 4.5, OrderCount: 234},
	}
}

func seedNodeEfficiency() []timeline.NodeEfficiency {
	return []timeline.NodeEfficiency{
		{Node: "装车", NodeType: waybill.NodeLoading, AvgTime: 45, Threshold: 60},
		{Node: "施封", NodeType: waybill.NodeSealing, AvgTime: 30, Threshold: 30},
		{Node: "报关", NodeType: waybill.NodeCustomsDeclaration, AvgTime: 75, Threshold: 60, IsOverThreshold: true},
		{Node: "出境", NodeType: waybill.NodeExit, AvgTime: 20, Threshold: 30},
	}
}

func seedExceptions() []analytics.ExceptionData {
	return []analytics.ExceptionData{
		{Type: "超时", Count: 23, Percentage: 45},
		{Type: "单据问题", Count: 15, Percentage: 30},
		{Type: "换头", Count: 8, Percentage: 15},
		{Type: "其他", Count: 5, Percentage: 10},
	}
}

func seedExceptionOrders() []analytics.ExceptionOrder {
	return []analytics.ExceptionOrder{
		{ID: "1", WaybillNo: "GF20240120001", Route: "新疆→哈萨克斯坦", ExceptionType: "超时", Description: "报关环节超时2小时", OccurTime: "2024-01-20 14:30", Status: analytics.ExceptionProcessing},
		{ID: "2", WaybillNo: "GF20240119045", Route: "新疆→乌兹别克斯坦", ExceptionType: "单据问题", Description: "关封信息有误需重新申报", OccurTime: "2024-01-19 09:15", Status: analytics.ExceptionResolved},
		{ID: "3", WaybillNo: "GF20240118023", Route: "新疆→吉尔吉斯斯坦", ExceptionType: "换头", Description: "车辆故障需更换车头", OccurTime: "2024-01-18 16:45", Status: analytics.ExceptionResolved},
		{ID: "4", WaybillNo: "GF20240120018", Route: "新疆→塔吉克斯坦", ExceptionType: "超时", Description: "装车环节超时1.5小时", OccurTime: "2024-01-20 08:20", Status: analytics.ExceptionPending},
		{ID: "5", WaybillNo: "GF20240117089", Route: "新疆→哈萨克斯坦", ExceptionType: "单据问题", Description: "缺少货物清单", OccurTime: "2024-01-17 11:30", Status: analytics.ExceptionResolved},
	}
}

func seedOperators() []analytics.OperatorPerformance {
	return []analytics.OperatorPerformance{
		{ID: "1", Name: "张小明", OrderCount: 45, AvgProcessTime: 30, OvertimeRate: 5},
		{ID: "2", Name: "李华", OrderCount: 52, AvgProcessTime: 28, OvertimeRate: 3},
		{ID: "3", Name: "王强", OrderCount: 38, AvgProcessTime: 35, OvertimeRate: 8, IsHighRisk: true},
		{ID: "4", Name: "刘芳", OrderCount: 48, AvgProcessTime: 32, OvertimeRate: 4},
		{ID: "5", Name: "陈静", OrderCount: 41, AvgProcessTime: 31, OvertimeRate: 6},
	}
}

func seedSalesmen() []analytics.SalesmanPerformance {
	return []analytics.SalesmanPerformance{
		{ID: "1", Name: "李小红", OrderScale: 156.8, ExceptionRate: 3},
		{ID: "2", Name: "张伟", OrderScale: 189.5, ExceptionRate: 5.5, IsHighRisk: true},
		{ID: "3", Name: "王芳", OrderScale: 134.2, ExceptionRate: 2.1},
		{ID: "4", Name: "刘强", OrderScale: 167.3, ExceptionRate: 4.2},
		{ID: "5", Name: "陈明", OrderScale: 145.6, ExceptionRate: 3.8},
	}
}

func seedTrend() []analytics.FinancialTrend {
	return []analytics.FinancialTrend{
		{Date: "1月", Revenue: 980, Cost: 735, Profit: 245},
		{Date: "2月", Revenue: 1120, Cost: 840, Profit: 280},
		{Date: "3月", Revenue: 1050, Cost: 787, Profit: 263},
		{Date: "4月", Revenue: 1180, Cost: 885, Profit: 295},
		{Date: "5月", Revenue: 1250, Cost: 937, Profit: 313},
		{Date: "6月", Revenue: 1320, Cost: 990, Profit: 330},
		{Date: "7月", Revenue: 1285, Cost: 964, Profit: 321},
		{Date: "8月", Revenue: 1350, Cost: 1012, Profit: 338},
		{Date: "9月", Revenue: 1420, Cost: 1065, Profit: 355},
		{Date: "10月", Revenue: 1380, Cost: 1035, Profit: 345},
		{Date: "11月", Revenue: 1450, Cost: 1087, Profit: 363},
		{Date: "12月", Revenue: 1520, Cost: 1140, Profit: 380},
	}
}

func seedHighRiskOrders() []analytics.HighRiskOrder {
	return []analytics.HighRiskOrder{
		{ID: "1", WaybillNo: "GF20240120001", RiskLevel: analytics.RiskHigh, RiskReason: "超期货款未收回", Amount: 85000},
		{ID: "2", WaybillNo: "GF20240115034", RiskLevel: analytics.RiskHigh, RiskReason: "客户信用评级下降", Amount: 120000},
		{ID: "3", WaybillNo: "GF20240118056", RiskLevel: analytics.RiskMedium, RiskReason: "异常处理中", Amount: 45000},
		{ID: "4", WaybillNo: "GF20240110078", RiskLevel: analytics.RiskMedium, RiskReason: "单据不全", Amount: 32000},
		{ID: "5", WaybillNo: "GF20240120092", RiskLevel: analytics.RiskHigh, RiskReason: "货物滞留", Amount: 156000},
	}
}

func seedCustomers() []customer.Customer {
	return []customer.Customer{
		{ID: "1", Name: "新疆国际贸易有限公司", Contact: "张经理", Phone: "0991-8888888", Email: "zhang@xjtrade.com", Address: "新疆乌鲁木齐市天山区国际贸易大厦", CreditLevel: customer.CreditA, CooperationStatus: customer.CooperationActive, RegisterDate: day("2022-03-15"), TotalOrders: 156, TotalAmount: 28500000, UnsettledAmount: 450000, LastOrderDate: day("2024-01-20"), Remark: "优质客户，合作稳定"},
		{ID: "2", Name: "中亚物流集团", Contact: "李总", Phone: "0992-6666666", Email: "li@zylogistics.com", Address: "新疆伊犁州霍尔果斯市物流园区", CreditLevel: customer.CreditA, CooperationStatus: customer.CooperationActive, RegisterDate: day("2021-08-20"), TotalOrders: 234, TotalAmount: 42800000, UnsettledAmount: 0, LastOrderDate: day("2024-01-19"), Remark: "大客户，月订单量稳定"},
		{ID: "3", Name: "西北贸易公司", Contact: "王经理", Phone: "0931-5555555", Email: "wang@xbtrade.com", Address: "甘肃省兰州市城关区贸易中心", CreditLevel: customer.CreditB, CooperationStatus: customer.CooperationActive, RegisterDate: day("2023-01-10"), TotalOrders: 89, TotalAmount: 12500000, UnsettledAmount: 180000, LastOrderDate: day("2024-01-18"), Remark: "新客户，需重点关注"},
		{ID: "4", Name: "丝路货运代理", Contact: "刘经理", Phone: "0993-7777777", Email: "liu@silkroad.com", Address: "新疆喀什地区喀什市货运市场", CreditLevel: customer.CreditC, CooperationStatus: customer.CooperationSuspended, RegisterDate: day("2022-11-05"), TotalOrders: 45, TotalAmount: 5600000, UnsettledAmount: 890000, LastOrderDate: day("2024-01-15"), Remark: "存在欠款，已暂停合作"},
		{ID: "5", Name: "欧亚供应链管理", Contact: "陈总", Phone: "010-9999999", Email: "chen@oyasupply.com", Address: "北京市朝阳区国贸大厦", CreditLevel: customer.CreditA, CooperationStatus: customer.CooperationActive, RegisterDate: day("2023-06-18"), TotalOrders: 67, TotalAmount: 15800000, UnsettledAmount: 0, LastOrderDate: day("2024-01-20"), Remark: "北京客户，订单质量高"},
		{ID: "6", Name: "天山物流有限公司", Contact: "赵经理", Phone: "0994-3333333", Email: "zhao@tianshan.com", Address: "新疆昌吉州昌吉市物流园区", CreditLevel: customer.CreditB, CooperationStatus: customer.CooperationActive, RegisterDate: day("2022-09-12"), TotalOrders: 112, TotalAmount: 18900000, UnsettledAmount: 320000, LastOrderDate: day("2024-01-17"), Remark: "本地客户，合作良好"},
		{ID: "7", Name: "西域贸易集团", Contact: "孙总", Phone: "0995-4444444", Email: "sun@xiyu.com", Address: "新疆吐鲁番市高昌区贸易城", CreditLevel: customer.CreditB, CooperationStatus: customer.CooperationInactive, RegisterDate: day("2023-02-28"), TotalOrders: 34, TotalAmount: 4800000, UnsettledAmount: 0, LastOrderDate: day("2023-12-20"), Remark: "近期无订单，需跟进"},
		{ID: "8", Name: "胡杨林货运公司", Contact: "周经理", Phone: "0996-2222222", Email: "zhou@huyang.com", Address: "新疆阿克苏地区阿克苏市货运站", CreditLevel: customer.CreditC, CooperationStatus: customer.CooperationActive, RegisterDate: day("2023-04-15"), TotalOrders: 56, TotalAmount: 7200000, UnsettledAmount: 560000, LastOrderDate: day("2024-01-16"), Remark: "中小客户，订单不稳定"},
	}
}

func seedWaybills() []waybill.Waybill {
	return []waybill.Waybill{
		{
			ID: "1", WaybillNo: "GF20240120001", Status: waybill.StatusInTransit,
			CustomerName: "新疆国际贸易有限公司", Origin: "新疆阿拉山口", Destination: "哈萨克斯坦阿拉木图",
			GoodsType: "电子产品", Weight: 25000, VehicleType: "集装箱车",
			CustomsLocation: "阿拉山口口岸", UnloadLocation: "阿拉木图物流园", Quantity: 2,
			LoadingTime: clock("2024-01-20 08:00"), LoadingWarehouse: "阿拉山口保税仓A区", OrderAmount: 45000,
			CreateTime: clock("2024-01-18 10:30"), UpdateTime: clock("2024-01-20 16:45"),
			Nodes: []waybill.Node{
				{ID: "1", Type: waybill.NodeLoading, Status: waybill.NodeCompleted, Timestamp: stamp("2024-01-20 08:30"), Operator: "张小明", Location: "阿拉山口保税仓A区", Remark: "装车完成"},
				{ID: "2", Type: waybill.NodeSealing, Status: waybill.NodeCompleted, Timestamp: stamp("2024-01-20 09:15"), Operator: "李华", Location: "阿拉山口保税仓A区", Remark: "施封完成"},
				{ID: "3", Type: waybill.NodeCustomsDeclaration, Status: waybill.NodeCompleted, Timestamp: stamp("2024-01-20 11:30"), Operator: "王强", Location: "阿拉山口海关", Remark: "报关完成"},
				{ID: "4", Type: waybill.NodeExit, Status: waybill.NodeCompleted, Timestamp: stamp("2024-01-20 14:20"), Operator: "刘芳", Location: "阿拉山口口岸", Remark: "出境完成"},
				{ID: "5", Type: waybill.NodeTransit, Status: waybill.NodeProcessing, Operator: "陈静", Location: "哈萨克斯坦境内", Remark: "运输中"},
			},
			Documents: []waybill.Document{
				{ID: "1", Type: waybill.DocExitVideo, Name: "出境视频.mp4", URL: "/docs/video1.mp4", UploadTime: clock("2024-01-20 14:25"), Uploader: "刘芳"},
				{ID: "2", Type: waybill.DocSealPhoto, Name: "施封照片.jpg", URL: "/docs/photo1.jpg", UploadTime: clock("2024-01-20 09:20"), Uploader: "李华"},
			},
			DriverInfo:   &waybill.DriverInfo{ID: "1", Name: "马师傅", Phone: "138****1234", LicenseNo: "6501****"},
			VehicleInfo:  &waybill.VehicleInfo{HeadNo: "新A12345", TrailerNo: "新A6789挂"},
			OperatorInfo: &waybill.OperatorInfo{ID: "1", Name: "张小明", Phone: "0991****"},
			SalesmanInfo: &waybill.SalesmanInfo{ID: "1", Name: "李小红", Phone: "0991****"},
		},
		{
			ID: "2", WaybillNo: "GF20240120002", Status: waybill.StatusSealed,
			CustomerName: "中亚物流集团", Origin: "新疆霍尔果斯", Destination: "乌兹别克斯坦塔什干",
			GoodsType: "纺织品", Weight: 18000, VehicleType: "厢式货车",
			CustomsLocation: "霍尔果斯口岸", UnloadLocation: "塔什干批发市场", Quantity: 1,
			LoadingTime: clock("2024-01-20 10:00"), LoadingWarehouse: "霍尔果斯物流园B区", OrderAmount: 32000,
			CreateTime: clock("2024-01-19 14:20"), UpdateTime: clock("2024-01-20 11:30"),
			Nodes: []waybill.Node{
				{ID: "1", Type: waybill.NodeLoading, Status: waybill.NodeCompleted, Timestamp: stamp("2024-01-20 10:30"), Operator: "李华", Location: "霍尔果斯物流园B区", Remark: "装车完成"},
				{ID: "2", Type: waybill.NodeSealing, Status: waybill.NodeCompleted, Timestamp: stamp("2024-01-20 11:20"), Operator: "王强", Location: "霍尔果斯物流园B区", Remark: "施封完成"},
				{ID: "3", Type: waybill.NodeCustomsDeclaration, Status: waybill.NodePending, Operator: "刘芳", Location: "霍尔果斯海关", Remark: "等待报关"},
			},
			Documents: []waybill.Document{
				{ID: "3", Type: waybill.DocSealPhoto, Name: "施封照片.jpg", URL: "/docs/photo2.jpg", UploadTime: clock("2024-01-20 11:25"), Uploader: "王强"},
			},
			DriverInfo:   &waybill.DriverInfo{ID: "2", Name: "王师傅", Phone: "139****5678", LicenseNo: "6502****"},
			VehicleInfo:  &waybill.VehicleInfo{HeadNo: "新B54321"},
			OperatorInfo: &waybill.OperatorInfo{ID: "2", Name: "李华", Phone: "0992****"},
			SalesmanInfo: &waybill.SalesmanInfo{ID: "2", Name: "张伟", Phone: "0992****"},
		},
		{
			ID: "3", WaybillNo: "GF20240120003", Status: waybill.StatusExited,
			CustomerName: "西北贸易公司", Origin: "新疆伊尔克什坦", Destination: "吉尔吉斯斯坦比什凯克",
			GoodsType: "机械设备", Weight: 35000, VehicleType: "低平板车",
			CustomsLocation: "伊尔克什坦口岸", UnloadLocation: "比什凯克工业区", Quantity: 3,
			LoadingTime: clock("2024-01-19 14:00"), LoadingWarehouse: "伊尔克什坦堆场C区", OrderAmount: 68000,
			CreateTime: clock("2024-01-17 09:15"), UpdateTime: clock("2024-01-20 09:30"),
			Nodes: []waybill.Node{
				{ID: "1", Type: waybill.NodeLoading, Status: waybill.NodeCompleted, Timestamp: stamp("2024-01-19 14:45"), Operator: "王强", Location: "伊尔克什坦堆场C区", Remark: "装车完成"},
				{ID: "2", Type: waybill.NodeSealing, Status: waybill.NodeCompleted, Timestamp: stamp("2024-01-19 15:30"), Operator: "刘芳", Location: "伊尔克什坦堆场C区", Remark: "施封完成"},
				{ID: "3", Type: waybill.NodeCustomsDeclaration, Status: waybill.NodeCompleted, Timestamp: stamp("2024-01-19 17:00"), Operator: "陈静", Location: "伊尔克什坦海关", Remark: "报关完成"},
				{ID: "4", Type: waybill.NodeExit, Status: waybill.NodeCompleted, Timestamp: stamp("2024-01-20 09:00"), Operator: "张小明", Location: "伊尔克什坦口岸", Remark: "出境完成"},
				{ID: "5", Type: waybill.NodeTransit, Status: waybill.NodeProcessing, Operator: "李华", Location: "吉尔吉斯斯坦境内", Remark: "运输中"},
			},
			Documents: []waybill.Document{
				{ID: "4", Type: waybill.DocExitVideo, Name: "出境视频.mp4", URL: "/docs/video2.mp4", UploadTime: clock("2024-01-20 09:05"), Uploader: "张小明"},
				{ID: "5", Type: waybill.DocSealPhoto, Name: "施封照片.jpg", URL: "/docs/photo3.jpg", UploadTime: clock("2024-01-19 15:35"), Uploader: "刘芳"},
			},
			DriverInfo:   &waybill.DriverInfo{ID: "3", Name: "刘师傅", Phone: "137****9012", LicenseNo: "6503****"},
			VehicleInfo:  &waybill.VehicleInfo{HeadNo: "新C98765", TrailerNo: "新C4321挂"},
			OperatorInfo: &waybill.OperatorInfo{ID: "3", Name: "王强", Phone: "0993****"},
			SalesmanInfo: &waybill.SalesmanInfo{ID: "3", Name: "王芳", Phone: "0993****"},
		},
		{
			ID: "4", WaybillNo: "GF20240120004", Status: waybill.StatusException,
			CustomerName: "丝路货运代理", Origin: "新疆卡拉苏", Destination: "塔吉克斯坦杜尚别",
			GoodsType: "日用百货", Weight: 12000, VehicleType: "厢式货车",
			CustomsLocation: "卡拉苏口岸", UnloadLocation: "杜尚别市场", Quantity: 1,
			LoadingTime: clock("2024-01-20 07:30"), LoadingWarehouse: "卡拉苏货场D区", OrderAmount: 28000,
			CreateTime: clock("2024-01-19 16:45"), UpdateTime: clock("2024-01-20 15:20"),
			Nodes: []waybill.Node{
				{ID: "1", Type: waybill.NodeLoading, Status: waybill.NodeCompleted, Timestamp: stamp("2024-01-20 08:15"), Operator: "刘芳", Location: "卡拉苏货场D区", Remark: "装车完成"},
				{ID: "2", Type: waybill.NodeSealing, Status: waybill.NodeCompleted, Timestamp: stamp("2024-01-20 09:00"), Operator: "陈静", Location: "卡拉苏货场D区", Remark: "施封完成"},
				{ID: "3", Type: waybill.NodeCustomsDeclaration, Status: waybill.NodeException, Operator: "张小明", Location: "卡拉苏海关", Remark: "单据问题，需重新申报"},
			},
			Documents: []waybill.Document{
				{ID: "6", Type: waybill.DocSealPhoto, Name: "施封照片.jpg", URL: "/docs/photo4.jpg", UploadTime: clock("2024-01-20 09:05"), Uploader: "陈静"},
			},
			DriverInfo:   &waybill.DriverInfo{ID: "4", Name: "陈师傅", Phone: "136****3456", LicenseNo: "6504****"},
			VehicleInfo:  &waybill.VehicleInfo{HeadNo: "新D11111"},
			OperatorInfo: &waybill.OperatorInfo{ID: "4", Name: "刘芳", Phone: "0994****"},
			SalesmanInfo: &waybill.SalesmanInfo{ID: "4", Name: "刘强", Phone: "0994****"},
		},
		{
			ID: "5", WaybillNo: "GF20240120005", Status: waybill.StatusFindingVehicle,
			CustomerName: "欧亚供应链管理", Origin: "新疆巴克图", Destination: "哈萨克斯坦阿斯塔纳",
			GoodsType: "食品", Weight: 22000, VehicleType: "冷藏车",
			CustomsLocation: "巴克图口岸", UnloadLocation: "阿斯塔纳冷链中心", Quantity: 2,
			LoadingTime: clock("2024-01-21 06:00"), LoadingWarehouse: "巴克图冷库E区", OrderAmount: 52000,
			CreateTime: clock("2024-01-20 11:30"), UpdateTime: clock("2024-01-20 11:30"),
			Nodes: []waybill.Node{
				{ID: "1", Type: waybill.NodeLoading, Status: waybill.NodePending, Operator: "陈静", Location: "巴克图冷库E区", Remark: "等待装车"},
			},
			Documents:    []waybill.Document{},
			OperatorInfo: &waybill.OperatorInfo{ID: "5", Name: "陈静", Phone: "0995****"},
			SalesmanInfo: &waybill.SalesmanInfo{ID: "5", Name: "陈明", Phone: "0995****"},
		},
	}
}
