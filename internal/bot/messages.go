package bot

// User-facing texts. Store and report failures map to fixed messages so
// backend diagnostics never reach the chat; detail goes to the operator log.
const (
	msgStart = "به ربات حضور و غیاب خوش آمدید.\n" +
		"برای دریافت راهنما از /help استفاده کنید."

	msgHelp = "دستورات موجود در ربات:\n" +
		"/checkin - برای ثبت ورود به شرکت.\n" +
		"/checkout - برای ثبت خروج از شرکت.\n" +
		"/report - برای دریافت گزارش ماهانه.\n" +
		"/help - برای دریافت راهنمای دستورات."

	msgCheckedIn  = "شما در تاریخ %s و ساعت %s برای ثبت ورود به شرکت وارد شدید."
	msgCheckedOut = "شما در تاریخ %s و ساعت %s برای ثبت خروج از شرکت خارج شدید."

	msgAlreadyCheckedIn = "شما امروز یک ورود باز دارید. ابتدا با /checkout خروج خود را ثبت کنید."
	msgNoOpenRecord     = "ورود بازی برای امروز ثبت نشده است. ابتدا با /checkin ورود خود را ثبت کنید."

	msgNoRecords = "در این ماه رکوردی ثبت نشده است."

	msgStoreError  = "خطا در پایگاه داده. لطفاً بعداً دوباره تلاش کنید."
	msgReportError = "خطا در ساخت گزارش. لطفاً بعداً دوباره تلاش کنید."

	msgUnknownCommand = "دستور ناشناخته است. برای راهنما از /help استفاده کنید."
)
