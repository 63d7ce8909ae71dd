package notification

import "strings"

// Translation holds the localized strings of the guest confirmation mail.
// The admin summary always renders in English.
type Translation struct {
	SuccessMessage    string
	GuestSubject      string
	GuestWelcome      string
	GuestDear         string
	GuestThankYou     string
	GuestRoomInfo     string
	GuestRoomNumber   string
	GuestRoomKey      string
	GuestRegDetails   string
	GuestSubmissionID string
	GuestCheckinDate  string
	GuestCheckoutDate string
	GuestRegTime      string
	GuestHelp         string
	GuestEnjoy        string
	GuestPrivacy      string
}

var translations = map[string]Translation{
	"en": {
		SuccessMessage:    "Registration successful! Your submission ID is:",
		GuestSubject:      "Welcome to {{hotelName}} - Room Key Information",
		GuestWelcome:      "Welcome to {{hotelName}}!",
		GuestDear:         "Dear {{firstName}} {{lastName}},",
		GuestThankYou:     "Thank you for completing your TM30 registration. Your registration has been submitted successfully.",
		GuestRoomInfo:     "Your Room Information",
		GuestRoomNumber:   "Room Number:",
		GuestRoomKey:      "Room Key Code:",
		GuestRegDetails:   "Registration Details:",
		GuestSubmissionID: "Submission ID:",
		GuestCheckinDate:  "Check-in Date:",
		GuestCheckoutDate: "Check-out Date:",
		GuestRegTime:      "Registration Time:",
		GuestHelp:         "If you have any questions or need assistance, please contact the hotel reception.",
		GuestEnjoy:        "We hope you enjoy your stay!",
		GuestPrivacy:      "Note: Your personal data will be automatically deleted from our system after 7 days as per our privacy policy.",
	},
	"th": {
		SuccessMessage:    "ลงทะเบียนสำเร็จ! รหัสการส่งของท่านคือ:",
		GuestSubject:      "ยินดีต้อนรับสู่ {{hotelName}} - ข้อมูลกุญแจห้อง",
		GuestWelcome:      "ยินดีต้อนรับสู่ {{hotelName}}!",
		GuestDear:         "เรียน {{firstName}} {{lastName}},",
		GuestThankYou:     "ขอบคุณที่ทำการลงทะเบียน TM30 เสร็จสมบูรณ์ การลงทะเบียนของท่านได้ส่งเรียบร้อยแล้ว",
		GuestRoomInfo:     "ข้อมูลห้องของท่าน",
		GuestRoomNumber:   "หมายเลขห้อง:",
		GuestRoomKey:      "รหัสกุญแจห้อง:",
		GuestRegDetails:   "รายละเอียดการลงทะเบียน:",
		GuestSubmissionID: "รหัสการส่ง:",
		GuestCheckinDate:  "วันที่เช็คอิน:",
		GuestCheckoutDate: "วันที่เช็คเอาท์:",
		GuestRegTime:      "เวลาที่ลงทะเบียน:",
		GuestHelp:         "หากท่านมีคำถามหรือต้องการความช่วยเหลือ กรุณาติดต่อแผนกต้อนรับของโรงแรม",
		GuestEnjoy:        "เราหวังว่าท่านจะเพลิดเพลินกับการพักของท่าน!",
		GuestPrivacy:      "หมายเหตุ: ข้อมูลส่วนบุคคลของท่านจะถูกลบออกจากระบบของเราโดยอัตโนมัติหลังจาก 7 วัน ตามนโยบายความเป็นส่วนตัวของเรา",
	},
	"zh": {
		SuccessMessage:    "登记成功！您的提交ID是:",
		GuestSubject:      "欢迎来到 {{hotelName}} - 房间钥匙信息",
		GuestWelcome:      "欢迎来到 {{hotelName}}!",
		GuestDear:         "亲爱的 {{firstName}} {{lastName}},",
		GuestThankYou:     "感谢您完成TM30登记。您的登记已成功提交。",
		GuestRoomInfo:     "您的房间信息",
		GuestRoomNumber:   "房间号:",
		GuestRoomKey:      "房间钥匙代码:",
		GuestRegDetails:   "登记详情:",
		GuestSubmissionID: "提交ID:",
		GuestCheckinDate:  "入住日期:",
		GuestCheckoutDate: "退房日期:",
		GuestRegTime:      "登记时间:",
		GuestHelp:         "如果您有任何问题或需要帮助，请联系酒店前台。",
		GuestEnjoy:        "我们希望您度过愉快的住宿时光！",
		GuestPrivacy:      "注意：根据我们的隐私政策，您的个人数据将在7天后自动从我们的系统中删除。",
	},
	"ru": {
		SuccessMessage:    "Регистрация успешна! Ваш ID подачи:",
		GuestSubject:      "Добро пожаловать в {{hotelName}} - Информация о ключе от номера",
		GuestWelcome:      "Добро пожаловать в {{hotelName}}!",
		GuestDear:         "Уважаемый {{firstName}} {{lastName}},",
		GuestThankYou:     "Спасибо за завершение регистрации TM30. Ваша регистрация была успешно отправлена.",
		GuestRoomInfo:     "Информация о вашем номере",
		GuestRoomNumber:   "Номер комнаты:",
		GuestRoomKey:      "Код ключа от комнаты:",
		GuestRegDetails:   "Детали регистрации:",
		GuestSubmissionID: "ID подачи:",
		GuestCheckinDate:  "Дата заезда:",
		GuestCheckoutDate: "Дата выезда:",
		GuestRegTime:      "Время регистрации:",
		GuestHelp:         "Если у вас есть вопросы или нужна помощь, обратитесь к стойке регистрации отеля.",
		GuestEnjoy:        "Мы надеемся, что вам понравится ваше пребывание!",
		GuestPrivacy:      "Примечание: Ваши персональные данные будут автоматически удалены из нашей системы через 7 дней в соответствии с нашей политикой конфиденциальности.",
	},
}

// TranslationFor returns the strings for a language code, falling back to
// English for anything unknown.
func TranslationFor(language string) Translation {
	if t, ok := translations[language]; ok {
		return t
	}

	return translations["en"]
}

func fill(template string, replacements map[string]string) string {
	out := template
	for key, value := range replacements {
		out = strings.ReplaceAll(out, "{{"+key+"}}", value)
	}

	return out
}
