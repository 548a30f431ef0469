package i18n

// Message keys shared between handlers and services.
const (
	KeyBookingSuccess       = "bookingSuccess"
	KeyBookingCreateFailed  = "bookingCreateFailed"
	KeyBookingNotAuthorized = "bookingNotAuthorized"
	KeyBookingsReadFailed   = "bookingsReadFailed"
	KeyBookingTouristOnly   = "bookingTouristOnly"
	KeyPleaseLoginToBook    = "pleaseLoginToBook"

	KeyStatusUpdated      = "statusUpdated"
	KeyStatusUpdateFailed = "statusUpdateFailed"
	KeyStatusInvalid      = "statusInvalid"

	KeyExperienceAdded      = "experienceAdded"
	KeyExperienceSaveFailed = "experienceSaveFailed"
	KeyExperiencesRead      = "experiencesReadFailed"
	KeyImageUploadFailed    = "imageUploadFailed"

	KeyProfileNotFound = "profileNotFound"
	KeyProfileUpdated  = "profileUpdated"
	KeyResetEmailSent  = "resetEmailSent"

	KeyAuthInvalidCredential = "authInvalidCredential"
	KeyAuthUserDisabled      = "authUserDisabled"
	KeyAuthTooManyRequests   = "authTooManyRequests"
	KeyAuthNetworkFailed     = "authNetworkFailed"
	KeyAuthEmailInUse        = "authEmailInUse"
	KeyAuthInvalidEmail      = "authInvalidEmail"
	KeyAuthWeakPassword      = "authWeakPassword"
	KeyAuthNotEnabled        = "authNotEnabled"
	KeyAuthGeneric           = "authGeneric"

	KeyDateTimeRequired    = "dateTimeRequired"
	KeyDateTimeInvalid     = "dateTimeInvalid"
	KeyFullNameRequired    = "fullNameRequired"
	KeyEmailInvalid        = "emailInvalid"
	KeyPersonsMin          = "personsMin"
	KeyExceedsMaxPersons   = "exceedsMaxPersons"
	KeyTitleRequired       = "titleRequired"
	KeyAccountTypeRequired = "accountTypeRequired"
)

var translations = map[Language]map[string]string{
	LangArabic: {
		KeyBookingSuccess:       "تم إنشاء الحجز بنجاح",
		KeyBookingCreateFailed:  "حدث خطأ أثناء إنشاء الحجز.",
		KeyBookingNotAuthorized: "ليس لديك صلاحية لإتمام الحجز.",
		KeyBookingsReadFailed:   "تعذّر قراءة الحجوزات",
		KeyBookingTouristOnly:   "الحجز متاح لحساب السائح فقط",
		KeyPleaseLoginToBook:    "سجّل الدخول لإتمام الحجز",

		KeyStatusUpdated:      "تم تحديث الحالة بنجاح",
		KeyStatusUpdateFailed: "فشل تحديث الحالة",
		KeyStatusInvalid:      "حالة الحجز غير صالحة",

		KeyExperienceAdded:      "تمت إضافة التجربة بنجاح",
		KeyExperienceSaveFailed: "تعذّر حفظ التجربة",
		KeyExperiencesRead:      "تعذّر قراءة التجارب",
		KeyImageUploadFailed:    "فشل رفع الصورة إلى Cloudinary",

		KeyProfileNotFound: "ملف المستخدم غير موجود. الرجاء إنشاء حساب جديد أولًا.",
		KeyProfileUpdated:  "تم تحديث الملف الشخصي",
		KeyResetEmailSent:  "إذا كان البريد مسجّلًا لدينا فستصلك رسالة لإعادة تعيين كلمة المرور",

		KeyAuthInvalidCredential: "البريد الإلكتروني أو كلمة المرور غير صحيحة",
		KeyAuthUserDisabled:      "تم تعطيل هذا الحساب",
		KeyAuthTooManyRequests:   "محاولات كثيرة، الرجاء المحاولة لاحقًا",
		KeyAuthNetworkFailed:     "مشكلة في الاتصال بالإنترنت",
		KeyAuthEmailInUse:        "البريد مستخدم مسبقًا",
		KeyAuthInvalidEmail:      "البريد الإلكتروني غير صالح",
		KeyAuthWeakPassword:      "كلمة المرور ضعيفة",
		KeyAuthNotEnabled:        "نوع التسجيل غير مفعّل",
		KeyAuthGeneric:           "تعذّر إتمام العملية، حاول مرة أخرى",

		KeyDateTimeRequired:    "الرجاء اختيار التاريخ والوقت.",
		KeyDateTimeInvalid:     "صيغة التاريخ أو الوقت غير صحيحة.",
		KeyFullNameRequired:    "الاسم الكامل مطلوب",
		KeyEmailInvalid:        "رجاءً أدخل بريدًا إلكترونيًّا بصيغة صحيحة",
		KeyPersonsMin:          "عدد الأشخاص يجب ألا يقل عن 1",
		KeyExceedsMaxPersons:   "الحد الأقصى للحجز هو %d أشخاص",
		KeyTitleRequired:       "عنوان التجربة مطلوب",
		KeyAccountTypeRequired: "نوع الحساب مطلوب",
	},
	LangEnglish: {
		KeyBookingSuccess:       "Booking created successfully",
		KeyBookingCreateFailed:  "Something went wrong while creating the booking.",
		KeyBookingNotAuthorized: "You are not authorized to complete this booking.",
		KeyBookingsReadFailed:   "Could not load bookings",
		KeyBookingTouristOnly:   "Booking is available for tourist accounts only",
		KeyPleaseLoginToBook:    "Please sign in to complete the booking",

		KeyStatusUpdated:      "Status updated successfully",
		KeyStatusUpdateFailed: "Failed to update status",
		KeyStatusInvalid:      "Invalid booking status",

		KeyExperienceAdded:      "Experience added successfully",
		KeyExperienceSaveFailed: "Could not save the experience",
		KeyExperiencesRead:      "Could not load experiences",
		KeyImageUploadFailed:    "Image upload to Cloudinary failed",

		KeyProfileNotFound: "User profile not found. Please register first.",
		KeyProfileUpdated:  "Profile updated",
		KeyResetEmailSent:  "If the email is registered, a reset message is on its way",

		KeyAuthInvalidCredential: "Incorrect email or password",
		KeyAuthUserDisabled:      "This account has been disabled",
		KeyAuthTooManyRequests:   "Too many attempts, please try again later",
		KeyAuthNetworkFailed:     "Network error",
		KeyAuthEmailInUse:        "Email already in use",
		KeyAuthInvalidEmail:      "Invalid email address",
		KeyAuthWeakPassword:      "Weak password",
		KeyAuthNotEnabled:        "Provider not enabled",
		KeyAuthGeneric:           "Something went wrong, please try again",

		KeyDateTimeRequired:    "Please pick a date and a time.",
		KeyDateTimeInvalid:     "The date or time format is invalid.",
		KeyFullNameRequired:    "Full name is required",
		KeyEmailInvalid:        "Please enter a valid email address",
		KeyPersonsMin:          "Party size must be at least 1",
		KeyExceedsMaxPersons:   "The maximum party size is %d",
		KeyTitleRequired:       "Experience title is required",
		KeyAccountTypeRequired: "Account type is required",
	},
}
